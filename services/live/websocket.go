package live

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// outboundBuffer bounds frames queued for a slow client
const outboundBuffer = 32

// Serve runs s over an accepted websocket until the client goes away or ctx
// is done. A normal close by the client is not an error.
func Serve(ctx context.Context, conn *websocket.Conn, s *Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan Inbound)
	out := make(chan Outbound, outboundBuffer)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		cancel()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(in)
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				fail(err)
				return
			}
			var msg Inbound
			if err := json.Unmarshal(data, &msg); err != nil {
				log.Printf("[WARNING] Live session %s: ignoring malformed message: %v", s.ID, err)
				continue
			}
			select {
			case in <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-out:
				if err := wsjson.Write(ctx, conn, msg); err != nil {
					fail(err)
					return
				}
			}
		}
	}()

	s.Run(ctx, in, out)
	cancel()
	wg.Wait()

	if isClientGone(firstErr) {
		return nil
	}
	return firstErr
}

func isClientGone(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return false
}
