package event

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/slideshow/api"
)

func waitForIdle(t *testing.T, idle *IdleQueue) {
	select {
	case <-idle.Ready():
		idle.RunPending()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for idle queue")
	}
}

func TestBroker_ConnectToGui(t *testing.T) {
	a := require.New(t)

	idle := NewIdleQueue(10)
	broker := InitBus(10, idle)

	var received *api.UpdateProgressCommand
	broker.ConnectToGui(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		received = command
	})

	broker.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{Name: "import", Current: 1, Total: 2})
	a.Nil(received)

	waitForIdle(t, idle)
	a.NotNil(received)
	a.Equal("import", received.Name)
	a.Equal(2, received.Total)
}

func TestBroker_SendError(t *testing.T) {
	a := require.New(t)

	idle := NewIdleQueue(10)
	broker := InitBus(10, idle)

	var received *api.ErrorCommand
	broker.ConnectToGui(api.ShowError, func(command *api.ErrorCommand) {
		received = command
	})

	broker.SendError("Could not save", errors.New("disk full"))
	waitForIdle(t, idle)

	a.NotNil(received)
	a.Equal("Could not save\ndisk full", received.Message)
}

func TestBroker_NothingDroppedWhileGuiIsBusy(t *testing.T) {
	a := require.New(t)

	idle := NewIdleQueue(10)
	broker := InitBus(10, idle)

	var received []int
	broker.ConnectToGui(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		received = append(received, command.Current)
	})
	broker.ConnectToGui(api.ImagesImported, func(command *api.ImportResultCommand) {
		received = append(received, -1)
	})

	const messages = 150
	for i := 0; i < messages; i++ {
		broker.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{Name: "import", Current: i, Total: messages})
	}
	broker.SendCommandToTopic(api.ImagesImported, &api.ImportResultCommand{})

	broker.WaitDelivered()
	a.Equal(messages+1, idle.Len())
	a.Equal(messages+1, idle.RunPending())

	a.Len(received, messages+1)
	a.Contains(received, -1)
	for i := 0; i < messages; i++ {
		a.Contains(received, i)
	}
}

func TestBroker_WaitDeliveredIgnoresOtherTopics(t *testing.T) {
	a := assert.New(t)

	idle := NewIdleQueue(1)
	broker := InitBus(10, idle)
	broker.Subscribe(api.RecentUpdated, func(command *api.RecentCommand) {})

	broker.SendCommandToTopic(api.RecentUpdated, &api.RecentCommand{})
	broker.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: "nobody listens"})

	broker.WaitDelivered()
	a.Equal(0, idle.Len())
}

func TestIdleQueue(t *testing.T) {
	a := assert.New(t)

	idle := NewIdleQueue(2)
	calls := 0
	for i := 0; i < 250; i++ {
		idle.IdleAdd(func() { calls++ })
	}
	a.Equal(250, idle.Len())

	select {
	case <-idle.Ready():
	default:
		t.Fatal("queue was not signalled")
	}

	a.Equal(250, idle.RunPending())
	a.Equal(250, calls)
	a.Equal(0, idle.RunPending())
	a.Equal(0, idle.Len())
}

func TestIdleQueue_RunsFunctionsQueuedByCallbacks(t *testing.T) {
	a := assert.New(t)

	idle := NewIdleQueue(1)
	var order []string
	idle.IdleAdd(func() {
		order = append(order, "first")
		idle.IdleAdd(func() { order = append(order, "second") })
	})

	a.Equal(2, idle.RunPending())
	a.Equal([]string{"first", "second"}, order)
}
