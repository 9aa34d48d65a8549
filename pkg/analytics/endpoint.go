package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	httputil "github.com/soapboxsocial/tracker/pkg/http"
	"github.com/soapboxsocial/tracker/pkg/tracking"
	"github.com/soapboxsocial/tracker/pkg/validation"
)

type identifyRequest struct {
	DistinctID string `json:"distinct_id"`
}

type aliasRequest struct {
	Alias      string `json:"alias"`
	DistinctID string `json:"distinct_id"`
}

type trackRequest struct {
	Event      string               `json:"event"`
	Properties tracking.PropertyBag `json:"properties"`
	Groups     tracking.PropertyBag `json:"groups"`
}

// propertyRequest carries either a single name and value, or a bag of properties.
type propertyRequest struct {
	Name       string               `json:"name"`
	Value      interface{}          `json:"value"`
	Properties tracking.PropertyBag `json:"properties"`
}

func (p propertyRequest) input() tracking.PropertyInput {
	if p.Properties != nil {
		return tracking.Properties(p.Properties)
	}

	return tracking.Property(p.Name, p.Value)
}

type unsetRequest struct {
	Name string `json:"name"`
}

type chargeRequest struct {
	Amount     interface{}          `json:"amount"`
	Properties tracking.PropertyBag `json:"properties"`
}

type Endpoint struct {
	tracker *tracking.Tracker
}

func NewEndpoint(tracker *tracking.Tracker) *Endpoint {
	return &Endpoint{
		tracker: tracker,
	}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/identify", e.identify).Methods("POST")
	r.HandleFunc("/alias", e.alias).Methods("POST")
	r.HandleFunc("/track", e.track).Methods("POST")
	r.HandleFunc("/flush", e.flush).Methods("POST")

	r.HandleFunc("/people/set", e.peopleSet).Methods("POST")
	r.HandleFunc("/people/set_once", e.peopleSetOnce).Methods("POST")
	r.HandleFunc("/people/increment", e.peopleIncrement).Methods("POST")
	r.HandleFunc("/people/unset", e.peopleUnset).Methods("POST")
	r.HandleFunc("/people/charge", e.peopleCharge).Methods("POST")

	r.HandleFunc("/groups/{key}/{id}/set", e.groupSet).Methods("POST")

	r.HandleFunc("/super_properties", e.superProperties).Methods("GET")
	r.HandleFunc("/distinct_id", e.distinctID).Methods("GET")

	return r
}

func (e *Endpoint) identify(w http.ResponseWriter, r *http.Request) {
	var req identifyRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.Identify(r.Context(), req.DistinctID))
}

func (e *Endpoint) alias(w http.ResponseWriter, r *http.Request) {
	var req aliasRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.Alias(r.Context(), req.Alias, req.DistinctID))
}

func (e *Endpoint) track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Groups != nil {
		respond(w, e.tracker.TrackWithGroups(r.Context(), req.Event, req.Properties, req.Groups))
		return
	}

	respond(w, e.tracker.Track(r.Context(), req.Event, req.Properties))
}

func (e *Endpoint) flush(w http.ResponseWriter, r *http.Request) {
	respond(w, e.tracker.Flush(r.Context()))
}

func (e *Endpoint) peopleSet(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.People().Set(r.Context(), req.input()))
}

func (e *Endpoint) peopleSetOnce(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.People().SetOnce(r.Context(), req.input()))
}

func (e *Endpoint) peopleIncrement(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.People().Increment(r.Context(), req.input()))
}

func (e *Endpoint) peopleUnset(w http.ResponseWriter, r *http.Request) {
	var req unsetRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.People().Unset(r.Context(), req.Name))
}

func (e *Endpoint) peopleCharge(w http.ResponseWriter, r *http.Request) {
	var req chargeRequest
	if !decode(w, r, &req) {
		return
	}

	respond(w, e.tracker.People().TrackCharge(r.Context(), req.Amount, req.Properties))
}

func (e *Endpoint) groupSet(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var req propertyRequest
	if !decode(w, r, &req) {
		return
	}

	group := e.tracker.Group(params["key"], params["id"])
	respond(w, group.Set(r.Context(), req.input()))
}

func (e *Endpoint) superProperties(w http.ResponseWriter, r *http.Request) {
	props, err := e.tracker.SuperProperties(r.Context())
	if err != nil {
		respond(w, err)
		return
	}

	if props == nil {
		props = tracking.PropertyBag{}
	}

	err = httputil.JsonEncode(w, props)
	if err != nil {
		log.Error().Err(err).Msg("failed to write super properties response")
	}
}

func (e *Endpoint) distinctID(w http.ResponseWriter, r *http.Request) {
	id, err := e.tracker.DistinctID(r.Context())
	if err != nil {
		respond(w, err)
		return
	}

	err = httputil.JsonEncode(w, identifyRequest{DistinctID: id})
	if err != nil {
		log.Error().Err(err).Msg("failed to write distinct id response")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid request body")
		return false
	}

	return true
}

func respond(w http.ResponseWriter, err error) {
	if err == nil {
		httputil.JsonSuccess(w)
		return
	}

	if errors.Is(err, validation.ErrInvalidArgument) {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidArgument, err.Error())
		return
	}

	log.Error().Err(err).Msg("tracker call failed")
	httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToTrack, "failed to track")
}
