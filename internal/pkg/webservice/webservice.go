// Package webservice exposes a plant's register caches over HTTP. It is a
// read-only surface; writes travel over the device link, not this API.
package webservice

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/plant"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/register"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/registercache"
	"github.com/gorilla/mux"
)

// RegisterDetail is the response body for a single register read.
type RegisterDetail struct {
	Key   string `json:"Key"`
	Raw   uint16 `json:"Raw"`
	Name  string `json:"Name,omitempty"`
	Value string `json:"Value,omitempty"`
}

// PlantSummary is the response body for the plant index.
type PlantSummary struct {
	PID       string `json:"PID"`
	Addresses []int  `json:"Addresses"`
}

// Service serves one plant
type Service struct {
	plant *plant.Plant
}

// New is the Service factory function
func New(p *plant.Plant) Service {
	return Service{plant: p}
}

// Router wires the handler set
func (s Service) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.PlantHandler).Methods("GET")
	r.HandleFunc("/plant/{addr}/registers", s.RegistersHandler).Methods("GET")
	r.HandleFunc("/plant/{addr}/registers/{key}", s.RegisterHandler).Methods("GET")
	return r
}

// Serve blocks serving the router
func (s Service) Serve(port string) error {
	log.Println("[Webservice] listening on port", port)
	return http.ListenAndServe(":"+port, s.Router())
}

// PlantHandler reports the plant PID and the device addresses seen so far.
func (s Service) PlantHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	addrs := make([]int, 0)
	for _, a := range s.plant.Addresses() {
		addrs = append(addrs, int(a))
	}
	writeJSON(w, PlantSummary{PID: s.plant.PID().String(), Addresses: addrs})
}

// RegistersHandler returns one device's cache in the serialized interchange
// form.
func (s Service) RegistersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	cache, ok := s.lookupCache(w, r)
	if !ok {
		return
	}
	writeJSON(w, cache)
}

// RegisterHandler returns a single raw word plus its rendered value when the
// register is statically known.
func (s Service) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	cache, ok := s.lookupCache(w, r)
	if !ok {
		return
	}

	key := mux.Vars(r)["key"]
	id, err := register.ParseIdentity(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raw, ok := cache.Get(id)
	if !ok {
		http.Error(w, "register "+id.String()+" missing from cache", http.StatusNotFound)
		return
	}

	detail := RegisterDetail{Key: id.String(), Raw: raw}
	if spec, ok := register.Lookup(id); ok {
		detail.Name = spec.Name
		detail.Value = register.Render(spec.Kind, spec.Scaling, raw).String()
	}
	writeJSON(w, detail)
}

func (s Service) lookupCache(w http.ResponseWriter, r *http.Request) (*registercache.Cache, bool) {
	addr, err := strconv.ParseUint(mux.Vars(r)["addr"], 0, 8)
	if err != nil {
		http.Error(w, "malformed device address", http.StatusBadRequest)
		return nil, false
	}
	c, ok := s.plant.Cache(byte(addr))
	if !ok {
		http.Error(w, "no such device address", http.StatusNotFound)
		return nil, false
	}
	return c, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Println("[Webservice] malformed JSON:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
