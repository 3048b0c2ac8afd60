package service

import (
	"encoding/json"
	"fmt"
	logger "log"

	"github.com/OpenTransitTools/picoyplaca/business/data/picoplaca"
	"github.com/jmoiron/sqlx"
	"github.com/nats-io/nats.go"
)

// verdictDestination is where verdicts should be sent after being served.
type verdictDestination interface {
	Publish(verdict *picoplaca.Verdict) error
}

// natsVerdictDestination sends verdicts over nats as json
type natsVerdictDestination struct {
	natsConn       *nats.Conn
	verdictSubject string
}

func (n *natsVerdictDestination) Publish(verdict *picoplaca.Verdict) error {
	jsonData, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("error marshaling verdict to json: error:%v", err)
	}
	return n.natsConn.Publish(n.verdictSubject, jsonData)
}

// dbVerdictDestination records verdicts in the database
type dbVerdictDestination struct {
	db *sqlx.DB
}

func (d *dbVerdictDestination) Publish(verdict *picoplaca.Verdict) error {
	return picoplaca.RecordVerdict(d.db, verdict)
}

// verdictPublisher hands each verdict to every destination. A failing destination does not stop the others.
type verdictPublisher struct {
	log          *logger.Logger
	destinations []verdictDestination
}

// makeVerdictPublisher builds verdictPublisher
func makeVerdictPublisher(log *logger.Logger, destinations ...verdictDestination) *verdictPublisher {
	return &verdictPublisher{
		log:          log,
		destinations: destinations,
	}
}

// publish sends verdict to all destinations, returning the number that accepted it
func (p *verdictPublisher) publish(verdict *picoplaca.Verdict) int {
	published := 0
	for _, destination := range p.destinations {
		err := destination.Publish(verdict)
		if err != nil {
			p.log.Printf("Error publishing verdict for plate %s: error:%v\n", verdict.Plate, err)
			continue
		}
		published++
	}
	return published
}
