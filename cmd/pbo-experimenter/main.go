package main

import (
	"os"

	"k8s.io/component-base/logs"
	"k8s.io/klog/v2"
)

func main() {
	logs.InitLogs()
	defer logs.FlushLogs()

	if err := NewCommand().Execute(); err != nil {
		klog.ErrorS(err, "Command failed")
		logs.FlushLogs()
		os.Exit(1)
	}
}
