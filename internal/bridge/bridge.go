package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// HandlerFunc runs one named operation. args is the parsed JSON argument
// object; the returned value is marshalled as the result.
type HandlerFunc func(ctx context.Context, args gjson.Result) (any, error)

// Error is a handler failure as seen by the caller: only the message crosses
// the boundary. In-process callers can still match the handler's error with
// errors.Is.
type Error struct {
	Handler string
	Message string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Bridge is a registry of named handlers
type Bridge struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewEmpty creates a bridge without handlers
func NewEmpty() *Bridge {
	return &Bridge{handlers: make(map[string]HandlerFunc)}
}

// Register adds or replaces a handler
func (b *Bridge) Register(name string, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = handler
}

// Names returns the registered handler names in sorted order
func (b *Bridge) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Invoke runs the handler registered under name with a JSON argument object.
// An empty args is treated as {}. Every failure is returned as *Error.
func (b *Bridge) Invoke(ctx context.Context, name string, args []byte) (json.RawMessage, error) {
	b.mu.RLock()
	handler, ok := b.handlers[name]
	b.mu.RUnlock()
	if !ok {
		return nil, &Error{Handler: name, Message: fmt.Sprintf("unknown handler: %s", name)}
	}

	if len(args) == 0 {
		args = []byte("{}")
	}
	if !gjson.ValidBytes(args) || !gjson.ParseBytes(args).IsObject() {
		return nil, &Error{Handler: name, Message: "invalid arguments: not a JSON object"}
	}

	callID := uuid.NewString()
	log.Printf("Invoke %s id=%s args=%s", name, callID, args)

	if err := ctx.Err(); err != nil {
		return nil, &Error{Handler: name, Message: err.Error(), cause: err}
	}

	result, err := handler(ctx, gjson.ParseBytes(args))
	if err != nil {
		log.Printf("Invoke %s id=%s failed: %v", name, callID, err)
		return nil, &Error{Handler: name, Message: err.Error(), cause: err}
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Invoke %s id=%s: cannot encode result: %v", name, callID, err)
		return nil, &Error{Handler: name, Message: fmt.Sprintf("cannot encode result: %v", err)}
	}

	log.Printf("Invoke %s id=%s ok", name, callID)
	return data, nil
}

// PathArgs builds the {"path": ...} argument object
func PathArgs(path string) []byte {
	args, err := sjson.SetBytes([]byte("{}"), "path", path)
	if err != nil {
		// sjson only fails on malformed input or paths, neither is possible here
		panic(err)
	}
	return args
}

// Envelope wraps an Invoke outcome as {"ok":true,"data":...} or
// {"ok":false,"error":"message"}
func Envelope(result json.RawMessage, err error) []byte {
	if err != nil {
		out, setErr := sjson.SetBytes([]byte(`{"ok":false}`), "error", err.Error())
		if setErr != nil {
			return []byte(`{"ok":false}`)
		}
		return out
	}
	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	out, setErr := sjson.SetRawBytes([]byte(`{"ok":true}`), "data", result)
	if setErr != nil {
		return []byte(`{"ok":true}`)
	}
	return out
}
