package main

import (
	"fmt"
	logger "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/OpenTransitTools/picoyplaca/app/pyp-svc/service"
	"github.com/OpenTransitTools/picoyplaca/business/data/picoplaca"
	"github.com/OpenTransitTools/picoyplaca/foundation/database"
	"github.com/ardanlabs/conf"
	"github.com/jmoiron/sqlx"
	"github.com/nats-io/nats.go"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "PYP_SVC : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Web struct {
			Port int `conf:"default:8080"`
		}
		Holidays struct {
			Province       string `conf:"default:EC-P"`
			Remote         bool   `conf:"default:false"`
			Url            string `conf:"default:https://holidays.abstractapi.com/v1/"`
			TimeoutSeconds int    `conf:"default:10"`
		}
		NATS struct {
			Url            string
			VerdictSubject string `conf:"default:pico-y-placa-verdicts"`
		}
		DB struct {
			Enabled             bool   `conf:"default:false"`
			User                string `conf:"default:postgres"`
			Password            string `conf:"default:postgres,noprint"`
			Host                string `conf:"default:0.0.0.0"`
			Name                string `conf:"default:postgres"`
			DisableTLS          bool   `conf:"default:true"`
			VerdictHistoryLimit int    `conf:"default:100"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Serve Pico y Placa circulation verdicts and holiday calendars"
	const prefix = "PYP_SVC"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
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

	// =========================================================================
	// Start Database

	var db *sqlx.DB
	if cfg.DB.Enabled {
		log.Println("main: Initializing database support")

		db, err = database.Open(database.Config{
			User:       cfg.DB.User,
			Password:   cfg.DB.Password,
			Host:       cfg.DB.Host,
			Name:       cfg.DB.Name,
			DisableTLS: cfg.DB.DisableTLS,
		})
		if err != nil {
			return fmt.Errorf("connecting to db: %w", err)
		}
		defer func() {
			log.Printf("main: Database Stopping : %s", cfg.DB.Host)
			err = db.Close()
			if err != nil {
				log.Printf("main: error closing database: %v", err)
			}
		}()

		if err = picoplaca.CreateVerdictSchema(db); err != nil {
			return fmt.Errorf("creating verdict schema: %w", err)
		}
	}

	// =========================================================================
	// Start NATS

	var natsConn *nats.Conn
	if len(cfg.NATS.Url) > 0 {
		log.Printf("main: Connecting to NATS : %s", cfg.NATS.Url)
		natsConn, err = nats.Connect(cfg.NATS.Url)
		if err != nil {
			return fmt.Errorf("connecting to nats: %w", err)
		}
		defer func() {
			log.Printf("main: NATS Stopping : %s", cfg.NATS.Url)
			natsConn.Close()
		}()
	}

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	service.StartServices(log, service.Conf{
		HttpPort:             cfg.Web.Port,
		Province:             cfg.Holidays.Province,
		RemoteHolidays:       cfg.Holidays.Remote,
		RemoteHolidaysUrl:    cfg.Holidays.Url,
		RemoteTimeoutSeconds: cfg.Holidays.TimeoutSeconds,
		VerdictSubject:       cfg.NATS.VerdictSubject,
		VerdictHistoryLimit:  cfg.DB.VerdictHistoryLimit,
	}, natsConn, db, shutdown)
	return nil
}
