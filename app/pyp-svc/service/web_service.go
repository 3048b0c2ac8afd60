package service

import (
	"context"
	"encoding/json"
	"errors"
	logger "log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/OpenTransitTools/picoyplaca/business/data/holiday"
	"github.com/OpenTransitTools/picoyplaca/business/data/picoplaca"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
)

//defaultHttpHandler simple default http handler for default route
type defaultHttpHandler struct {
}

//ServeHTTP implements defaultHttpHandler http.Handler interface
func (h *defaultHttpHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Application-Status", "OK")
}

//errorResponse is the json body sent with failed requests
type errorResponse struct {
	Error string `json:"error"`
}

//writeJSON marshals value to w with status, logging failures
func writeJSON(log *logger.Logger, w http.ResponseWriter, status int, value interface{}) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		log.Printf("Error marshaling response to json: error:%v\n", err)
		http.Error(w, "Error serving request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	byteCount, err := w.Write(jsonData)
	if err != nil {
		log.Printf("Error writing json response: %s", err)
		return
	}
	log.Printf("wrote %d bytes in json response.", byteCount)
}

//isValidationError returns true for errors caused by malformed plate, date or time
func isValidationError(err error) bool {
	return errors.Is(err, picoplaca.ErrInvalidPlateFormat) ||
		errors.Is(err, picoplaca.ErrInvalidDateFormat) ||
		errors.Is(err, picoplaca.ErrInvalidTimeFormat)
}

//predictHandler answers whether a plate can be on the road at a date and time
type predictHandler struct {
	log       *logger.Logger
	evaluator *picoplaca.Evaluator
	publisher *verdictPublisher
}

//ServeHTTP implements predictHandler's http.Handler interface
func (p *predictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	verdict, err := p.evaluator.Check(r.Context(),
		strings.TrimSpace(r.FormValue("plate")),
		strings.TrimSpace(r.FormValue("date")),
		strings.TrimSpace(r.FormValue("time")))
	if err != nil {
		status := http.StatusBadGateway
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		p.log.Printf("Unable to evaluate request %s: %v", r.URL.RawQuery, err)
		writeJSON(p.log, w, status, errorResponse{Error: err.Error()})
		return
	}
	p.publisher.publish(verdict)
	writeJSON(p.log, w, http.StatusOK, verdict)
}

//JsonHoliday is a single holiday in JsonHolidaysResponse
type JsonHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

//JsonHolidaysResponse lists the holidays observed in a year
type JsonHolidaysResponse struct {
	Year     int           `json:"year"`
	Province string        `json:"province"`
	Holidays []JsonHoliday `json:"holidays"`
}

//makeJsonHolidaysResponse builds JsonHolidaysResponse in date order
func makeJsonHolidaysResponse(year int, province holiday.Province, holidays holiday.Holidays) *JsonHolidaysResponse {
	result := &JsonHolidaysResponse{
		Year:     year,
		Province: string(province),
		Holidays: make([]JsonHoliday, 0, len(holidays)),
	}
	for _, date := range holidays.Dates() {
		result.Holidays = append(result.Holidays, JsonHoliday{Date: date, Name: holidays[date]})
	}
	return result
}

//holidaysHandler lists the holidays of the year in the request path
type holidaysHandler struct {
	log      *logger.Logger
	calendar *holiday.Calendar
}

//ServeHTTP implements holidaysHandler's http.Handler interface
func (h *holidaysHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year < 1 {
		writeJSON(h.log, w, http.StatusBadRequest, errorResponse{Error: "invalid year"})
		return
	}
	writeJSON(h.log, w, http.StatusOK,
		makeJsonHolidaysResponse(year, h.calendar.Province(), h.calendar.HolidaysForYear(year)))
}

//verdictsHandler returns the verdicts recorded for a plate
type verdictsHandler struct {
	log   *logger.Logger
	db    *sqlx.DB
	limit int
}

//ServeHTTP implements verdictsHandler's http.Handler interface
func (v *verdictsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	plate, err := picoplaca.ParsePlate(mux.Vars(r)["plate"])
	if err != nil {
		writeJSON(v.log, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	verdicts, err := picoplaca.GetVerdictsForPlate(v.db, plate.String(), v.limit)
	if err != nil {
		v.log.Printf("Unable to retrieve verdicts for plate %s: %v", plate, err)
		writeJSON(v.log, w, http.StatusInternalServerError, errorResponse{Error: "unable to retrieve verdicts"})
		return
	}
	writeJSON(v.log, w, http.StatusOK, verdicts)
}

//createRouter routes requests to the service handlers. verdict history is only served when db is present
func createRouter(log *logger.Logger,
	evaluator *picoplaca.Evaluator,
	calendar *holiday.Calendar,
	publisher *verdictPublisher,
	db *sqlx.DB,
	verdictHistoryLimit int) *mux.Router {

	r := mux.NewRouter()
	r.Handle("/", &defaultHttpHandler{})
	r.Handle("/predict", &predictHandler{
		log:       log,
		evaluator: evaluator,
		publisher: publisher,
	}).Methods(http.MethodGet)
	r.Handle("/holidays/{year:[0-9]+}", &holidaysHandler{
		log:      log,
		calendar: calendar,
	}).Methods(http.MethodGet)
	if db != nil {
		r.Handle("/verdicts/{plate}", &verdictsHandler{
			log:   log,
			db:    db,
			limit: verdictHistoryLimit,
		}).Methods(http.MethodGet)
	}
	return r
}

//createServer creates configured http.Server on httpPort serving handler
func createServer(handler http.Handler, httpPort int) *http.Server {
	srv := &http.Server{
		Addr: strings.Join([]string{"0.0.0.0", strconv.Itoa(httpPort)}, ":"),
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      handler,
	}
	return srv
}

//runWebService starts up the web service, and terminates on shutdown signal
func runWebService(log *logger.Logger,
	wg *sync.WaitGroup,
	handler http.Handler,
	httpPort int,
	shutdownSignal chan bool,
) {
	defer wg.Done()
	srv := createServer(handler, httpPort)
	log.Printf("Starting server on port %d", httpPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("server ListenAndServe ended. %s", err)
		}
	}()

	<-shutdownSignal
	log.Printf("ending webservice on shutdown signal")
	shutdownCtx, serverCancelFunc := context.WithTimeout(context.Background(), time.Duration(5)*time.Second)
	defer serverCancelFunc()
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("error shutting down webservice, error:%s", err)
	}
}
