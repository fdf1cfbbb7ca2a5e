package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	cliflag "k8s.io/component-base/cli/flag"
	logsapi "k8s.io/component-base/logs/api/v1"
	"k8s.io/klog/v2"

	"github.com/IOHprofiler/IOHexperimenter-sub000/apis/experiment/v1alpha1"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/suite"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/util"
)

const usageColumns = 100

type runOptions struct {
	config  string
	strict  bool
	logging *logsapi.LoggingConfiguration
}

type listOptions struct {
	functions  string
	dimensions string
	instances  string
}

// NewCommand builds the pbo-experimenter command tree.
func NewCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pbo-experimenter",
		Short:         "Benchmark discrete optimizers on the PBO suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newListCommand())
	return root
}

func newRunCommand() *cobra.Command {
	o := &runOptions{logging: logsapi.NewLoggingConfiguration()}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an experiment and write its result folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logsapi.ValidateAndApply(o.logging, nil); err != nil {
				return err
			}
			return runExperiment(cmd, o)
		},
	}

	var nfs cliflag.NamedFlagSets
	o.addFlags(nfs.FlagSet("experiment"))
	logsapi.AddFlags(o.logging, nfs.FlagSet("logging"))
	for _, f := range nfs.FlagSets {
		cmd.Flags().AddFlagSet(f)
	}
	cliflag.SetUsageAndHelpFunc(cmd, nfs, usageColumns)
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func (o *runOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "path to the experiment configuration file")
	fs.BoolVar(&o.strict, "strict", false, "fail on malformed problems instead of evaluating them to NaN")
}

func runExperiment(cmd *cobra.Command, o *runOptions) error {
	ctx := cmd.Context()
	logger := klog.FromContext(ctx)

	cfg, err := v1alpha1.LoadExperiment(o.config)
	if err != nil {
		return err
	}
	framework.SetStrict(o.strict)

	e, err := pbo.New(ctx, cfg)
	if err != nil {
		return err
	}
	report, runErr := e.Run(ctx)
	if report == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	if err := util.WriteReport(out, report.Summaries); err != nil {
		return err
	}
	size, err := util.DirSize(report.ResultFolder)
	if err != nil {
		logger.Error(err, "Measuring result folder", "folder", report.ResultFolder)
	}
	fmt.Fprintf(out, "\n%d runs written to %s (%s)\n",
		len(report.Results), report.ResultFolder, util.Bytes(size))
	return runErr
}

func newListCommand() *cobra.Command {
	o := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ids of the selected problems in suite order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := suite.NewSuite(suite.WithRanges(o.functions, o.dimensions, o.instances))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range s.Triples() {
				name, _ := suite.FunctionName(t.Function)
				fmt.Fprintf(out, "%s\t%s\n", t, name)
			}
			return nil
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *listOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.functions, "functions", suite.DefaultFunctions, "function ids, e.g. 1-5,7")
	fs.StringVar(&o.dimensions, "dimensions", suite.DefaultDimensions, "dimensions, e.g. 16,64")
	fs.StringVar(&o.instances, "instances", suite.DefaultInstances, "instance ids, e.g. 1-10")
}
