// Package mongodb persists register snapshots broadcast by a plant. Each
// device address upserts one document carrying the serialized interchange
// form, so the collection always mirrors the latest cache state.
package mongodb

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/britkat1980/givenergy-modbus/internal/pkg/msg"
	"github.com/britkat1980/givenergy-modbus/internal/pkg/plant"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler subscribes to a plant and writes its snapshots to MongoDB
type Handler struct {
	mux    *sync.Mutex
	inbox  <-chan msg.Msg
	pid    uuid.UUID
	config config
	stop   chan bool
}

type config struct {
	URI        string `json:"URI"`
	Port       string `json:"Port"`
	Database   string `json:"Database"`
	Collection string `json:"Collection"`
}

// PID is a getter for the handler PID
func (h Handler) PID() uuid.UUID {
	return h.pid
}

func redirectMsg(chIn <-chan msg.Msg, chOut chan<- msg.Msg) {
	for m := range chIn {
		chOut <- m
	}
}

// New is the Handler factory function. It subscribes to the publisher's
// update stream.
func New(configPath string, system msg.Publisher) (Handler, error) {
	jsonConfig, err := os.ReadFile(configPath)
	if err != nil {
		return Handler{}, err
	}
	cfg := config{}
	if err := json.Unmarshal(jsonConfig, &cfg); err != nil {
		return Handler{}, err
	}
	if cfg.Collection == "" {
		cfg.Collection = "registerSnapshots"
	}

	pid, _ := uuid.NewUUID()

	inbox := make(chan msg.Msg, 50)

	chUpdate, err := system.Subscribe(pid, msg.Update)
	if err != nil {
		return Handler{}, err
	}
	go redirectMsg(chUpdate, inbox)

	stop := make(chan bool)

	return Handler{
		mux:    &sync.Mutex{},
		inbox:  inbox,
		pid:    pid,
		config: cfg,
		stop:   stop,
	}, nil
}

func updateToBSON(m msg.Msg, u plant.Update) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.M{
			"pid":       m.PID().String(),
			"addr":      int(u.Addr),
			"registers": u.Registers,
		}},
	}
}

// StopProcess ends the Process loop
func (h *Handler) StopProcess() {
	h.stop <- true
}

// Process drains the inbox into the snapshot collection. Runs until
// StopProcess is called.
func (h Handler) Process() {
	//TODO: Handle reconnection to the MongoDB resource
	client, err := mongo.NewClient(options.Client().ApplyURI(h.config.URI + ":" + h.config.Port))
	if err != nil {
		log.Println(err)
	}

	ctx := context.TODO()
	err = client.Connect(ctx)
	if err != nil {
		log.Println(err)
	}
	defer client.Disconnect(ctx)

	collection := client.Database(h.config.Database).Collection(h.config.Collection)
loop:
	for {
		select {
		case m := <-h.inbox:
			update, ok := m.Payload().(plant.Update)
			if !ok {
				log.Println("[Mongo] dropped payload of unexpected type")
				continue
			}
			opts := options.Update().SetUpsert(true)
			_, err = collection.UpdateOne(
				ctx,
				bson.M{"pid": m.PID().String(), "addr": int(update.Addr)},
				updateToBSON(m, update),
				opts,
			)
			if err != nil {
				log.Println("[Mongo] write failed:", err)
			}
		case <-h.stop:
			break loop
		}
	}
	log.Println("[Mongo] Process Shutdown")
}
