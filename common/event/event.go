package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/common/logger"
)

type Broker struct {
	bus  messagebus.MessageBus
	idle *IdleQueue

	mux       sync.Mutex
	delivered *sync.Cond
	inFlight  int
	guiTopics map[api.Topic]int

	api.Sender
}

func InitBus(queueSize int, idle *IdleQueue) *Broker {
	broker := &Broker{
		bus:       messagebus.New(queueSize),
		idle:      idle,
		guiTopics: map[api.Topic]int{},
	}
	broker.delivered = sync.NewCond(&broker.mux)
	return broker
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

// ConnectToGui subscribes callback so that it is always invoked on the
// thread draining the idle queue.
func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		sendFn := func() {
			args := make([]reflect.Value, 0, len(params))
			for _, param := range params {
				args = append(args, reflect.ValueOf(param))
			}
			logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			reflect.ValueOf(callback).Call(args)
		}

		s.idle.IdleAdd(sendFn)
		s.markDelivered()
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}

	s.mux.Lock()
	s.guiTopics[topic]++
	s.mux.Unlock()
}

// WaitDelivered blocks until every message sent so far to a GUI topic has
// been queued on the idle queue.
func (s *Broker) WaitDelivered() {
	s.mux.Lock()
	defer s.mux.Unlock()
	for s.inFlight > 0 {
		s.delivered.Wait()
	}
}

func (s *Broker) markSent(topic api.Topic) {
	s.mux.Lock()
	s.inFlight += s.guiTopics[topic]
	s.mux.Unlock()
}

func (s *Broker) markDelivered() {
	s.mux.Lock()
	s.inFlight--
	if s.inFlight <= 0 {
		s.delivered.Broadcast()
	}
	s.mux.Unlock()
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.markSent(topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.markSent(topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

func (s *Broker) Close(topics ...api.Topic) {
	for _, topic := range topics {
		s.bus.Close(string(topic))
		s.mux.Lock()
		delete(s.guiTopics, topic)
		s.mux.Unlock()
	}
}
