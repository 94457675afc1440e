package main

import (
	"flag"
	"fmt"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/engine"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/config"
)

var (
	// 配置文件路径，为空则使用内置的双路口参考场景
	configPath = flag.String("config", "", "scenario config file path (empty means built-in reference scenario)")
	// 仿真参数，命令行指定时覆盖配置文件
	executionTime = flag.Int64("time", 0, "total simulation time in seconds (overrides config)")
	phaseDuration = flag.Int64("phase", 0, "signal phase duration in seconds (overrides config)")
	seed          = flag.Uint64("seed", 0, "random seed (overrides config)")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "main")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Fatalf("log.level must be one of %v", logLevels)
	}

	// 获取配置
	c := config.Default()
	if *configPath != "" {
		var err error
		if c, err = config.Load(*configPath); err != nil {
			log.Fatalf("%v", err)
		}
	}
	// 命令行覆盖项
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time":
			c.Control.ExecutionTime = *executionTime
		case "phase":
			c.Control.PhaseDuration = *phaseDuration
		case "seed":
			c.Control.Seed = *seed
		}
	})
	log.Infof("scenario: %d entry roads, %d exit roads, time %ds, phase %ds, seed %d",
		len(c.Network.Entries), len(c.Network.Exits),
		c.Control.ExecutionTime, c.Control.PhaseDuration, c.Control.Seed)

	e, err := engine.New(c)
	if err != nil {
		log.Fatalf("%v", err)
	}
	e.Run()
	e.LogRoadStats()
	fmt.Print(e.Result())
}
