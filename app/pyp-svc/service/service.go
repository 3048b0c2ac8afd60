// Package service runs the Pico y Placa http service
package service

import (
	logger "log"
	"os"
	"sync"
	"time"

	"github.com/OpenTransitTools/picoyplaca/business/data/holiday"
	"github.com/OpenTransitTools/picoyplaca/business/data/picoplaca"
	"github.com/OpenTransitTools/picoyplaca/foundation/httpclient"
	"github.com/jmoiron/sqlx"
	"github.com/nats-io/nats.go"
)

//Conf contains all configurable parameters of the service
type Conf struct {
	HttpPort             int
	Province             string
	RemoteHolidays       bool
	RemoteHolidaysUrl    string
	RemoteTimeoutSeconds int
	VerdictSubject       string
	VerdictHistoryLimit  int
}

//makeLookup builds the holiday.Lookup used by the evaluator, the local calendar unless conf asks for the remote service
func makeLookup(log *logger.Logger, conf Conf, calendar *holiday.Calendar) holiday.Lookup {
	if !conf.RemoteHolidays {
		return calendar
	}
	log.Printf("Using remote holiday service %s", conf.RemoteHolidaysUrl)
	client := httpclient.MakeClient(time.Duration(conf.RemoteTimeoutSeconds) * time.Second)
	return holiday.MakeRemoteLookup(holiday.APIKeyFromEnv(), client, conf.RemoteHolidaysUrl)
}

//makeDestinations collects where served verdicts go. natsConn and db may be nil
func makeDestinations(conf Conf, natsConn *nats.Conn, db *sqlx.DB) []verdictDestination {
	var destinations []verdictDestination
	if natsConn != nil {
		destinations = append(destinations, &natsVerdictDestination{
			natsConn:       natsConn,
			verdictSubject: conf.VerdictSubject,
		})
	}
	if db != nil {
		destinations = append(destinations, &dbVerdictDestination{db: db})
	}
	return destinations
}

//StartServices brings up the web service. Exits on shutdown signal.
//natsConn and db are optional, when nil verdicts are not published or recorded
func StartServices(log *logger.Logger,
	conf Conf,
	natsConn *nats.Conn,
	db *sqlx.DB,
	shutdownSignal chan os.Signal) {

	wg := sync.WaitGroup{}

	calendar := holiday.MakeCalendar(holiday.Province(conf.Province))
	evaluator := picoplaca.MakeEvaluator(makeLookup(log, conf, calendar))
	publisher := makeVerdictPublisher(log, makeDestinations(conf, natsConn, db)...)
	router := createRouter(log, evaluator, calendar, publisher, db, conf.VerdictHistoryLimit)

	webServiceShutdown := make(chan bool, 1)

	wg.Add(1)
	go runWebService(log, &wg, router, conf.HttpPort, webServiceShutdown)

	<-shutdownSignal
	log.Printf("Exiting on shutdown signal, shutting down subroutines")
	webServiceShutdown <- true
	wg.Wait()
	log.Printf("Subroutines shut down, exiting pico y placa service")
}
