package main

import (
	"context"
	"fmt"
	logger "log"
	"os"
	"time"

	"github.com/OpenTransitTools/picoyplaca/app/pyp-cli/checker"
	"github.com/OpenTransitTools/picoyplaca/business/data/holiday"
	"github.com/OpenTransitTools/picoyplaca/business/data/picoplaca"
	"github.com/OpenTransitTools/picoyplaca/foundation/httpclient"
	"github.com/ardanlabs/conf"
)

var build = "develop"

func main() {
	log := logger.New(os.Stderr, "PYP_CLI : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Args     conf.Args
		Holidays struct {
			Remote         bool   `conf:"default:false"`
			Url            string `conf:"default:https://holidays.abstractapi.com/v1/"`
			TimeoutSeconds int    `conf:"default:10"`
			Province       string `conf:"default:EC-P"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Check whether a vehicle may circulate in Quito under Pico y Placa"

	const prefix = "PYP"

	usage, err := conf.Usage(prefix, &cfg)
	if err != nil {
		return fmt.Errorf("generating config usage: %w", err)
	}

	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			printUsage(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Printf("main : Started : Application initializing : version %s", build)
	defer log.Println("main: Completed")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Printf("main: Config :\n%v\n", out)

	calendar := holiday.MakeCalendar(holiday.Province(cfg.Holidays.Province))

	switch cfg.Args.Num(0) {
	case "holidays":
		return checker.ListHolidays(os.Stdout, calendar, cfg.Args.Num(1))
	case "check", "":
		var lookup holiday.Lookup = calendar
		if cfg.Holidays.Remote {
			log.Printf("main: Using remote holiday service %s", cfg.Holidays.Url)
			client := httpclient.MakeClient(time.Duration(cfg.Holidays.TimeoutSeconds) * time.Second)
			lookup = holiday.MakeRemoteLookup(holiday.APIKeyFromEnv(), client, cfg.Holidays.Url)
		}
		evaluator := picoplaca.MakeEvaluator(lookup)
		var args []string
		if cfg.Args.Num(0) == "check" {
			args = cfg.Args[1:]
		}
		return checker.RunCheck(context.Background(), log, evaluator, checker.MakeStdinPrompter(), os.Stdout, args)
	default:
		printUsage(usage)
		return nil
	}
}

func printUsage(confUsage string) {
	fmt.Println(confUsage)
	fmt.Println("commands:")
	fmt.Println("check [plate date time]: decide whether the vehicle can be on the road, asking for missing values")
	fmt.Println("holidays year: list the holidays observed in year")
}
