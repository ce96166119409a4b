package game

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	v1 "github.com/harborfleet/event-gateway/internal/api/v1"
)

// engineStub records every CloudEvent the client delivers.
type engineStub struct {
	mu       sync.Mutex
	headers  []http.Header
	payloads [][]byte
}

func (e *engineStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		e.mu.Lock()
		e.headers = append(e.headers, r.Header.Clone())
		e.payloads = append(e.payloads, body)
		e.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}
}

func (e *engineStub) received() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.headers)
}

func newStubbedClient(t *testing.T) (*Client, *engineStub) {
	t.Helper()
	stub := &engineStub{}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "test-gateway")
	require.NoError(t, err)
	return client, stub
}

func TestClient_SendAttack(t *testing.T) {
	client, stub := newStubbedClient(t)

	g := Game{UUID: "g-1"}
	m := Match{
		UUID:    "m-1",
		PlayerA: Player{Username: "alice", Human: true},
		PlayerB: Player{Username: "bob", Human: true},
	}

	require.NoError(t, client.SendAttack(context.Background(), g, m, DefaultAttack()))
	require.Equal(t, 1, stub.received())

	require.Equal(t, v1.EventTypeAttack, stub.headers[0].Get("ce-type"))
	require.Equal(t, "test-gateway", stub.headers[0].Get("ce-source"))
	require.NotEmpty(t, stub.headers[0].Get("ce-id"))

	var payload AttackPayload
	require.NoError(t, json.Unmarshal(stub.payloads[0], &payload))
	require.Equal(t, "g-1", payload.Game.UUID)
	require.Equal(t, "alice", payload.Match.PlayerA.Username)
	require.Equal(t, DefaultAttack(), payload.Attack)
}

func TestClient_SendMatchLifecycle(t *testing.T) {
	client, stub := newStubbedClient(t)

	g := Game{UUID: "g-1"}
	m := Match{UUID: "m-1"}

	require.NoError(t, client.SendMatchStart(context.Background(), g, m))
	require.NoError(t, client.SendMatchEnd(context.Background(), g, m))
	require.Equal(t, 2, stub.received())

	require.Equal(t, v1.EventTypeMatchStart, stub.headers[0].Get("ce-type"))
	require.Equal(t, v1.EventTypeMatchEnd, stub.headers[1].Get("ce-type"))
}

func TestClient_ProcessEventForwards(t *testing.T) {
	client, stub := newStubbedClient(t)

	payload, err := json.Marshal(AttackPayload{
		Game:   Game{UUID: "g-1"},
		Match:  Match{UUID: "m-1"},
		Attack: DefaultAttack(),
	})
	require.NoError(t, err)

	env := &v1.Envelope{
		ID:      "evt-7",
		Source:  "/trigger/source",
		Type:    v1.EventTypeAttack,
		Payload: payload,
	}

	require.NoError(t, client.ProcessEvent(context.Background(), env))
	require.Equal(t, 1, stub.received())
	require.Equal(t, "evt-7", stub.headers[0].Get("ce-id"))
	require.Equal(t, "/trigger/source", stub.headers[0].Get("ce-source"))
}

func TestClient_ProcessEventRejectsBadPayload(t *testing.T) {
	client, stub := newStubbedClient(t)

	env := &v1.Envelope{
		ID:      "evt-8",
		Source:  "/trigger/source",
		Type:    v1.EventTypeAttack,
		Payload: []byte(`{"attack":{"origin":[9,9],"type":"Destroyer"}}`),
	}

	require.Error(t, client.ProcessEvent(context.Background(), env))
	require.Equal(t, 0, stub.received())
}

func TestClient_ProcessEventUnroutableType(t *testing.T) {
	client, stub := newStubbedClient(t)

	env := &v1.Envelope{ID: "evt-9", Source: "/s", Type: "Surrender"}
	require.Error(t, client.ProcessEvent(context.Background(), env))
	require.Equal(t, 0, stub.received())
}

func TestClient_DeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "test-gateway")
	require.NoError(t, err)

	sendErr := client.SendMatchStart(context.Background(), Game{UUID: "g"}, Match{UUID: "m"})
	require.Error(t, sendErr)
}
