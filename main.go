package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/km-arc/go-inject/app"
	"github.com/km-arc/go-inject/inject"
	"github.com/km-arc/go-inject/routing"
)

// Greeter is built fresh on every access, stamped with the id of the
// request it was built inside.
type Greeter struct {
	RequestID string
}

func (g *Greeter) Greet(name string) string {
	return "Hello, " + name + "!"
}

func main() {
	application := app.New(inject.RegistrarFunc(func(b *inject.Builder) {
		// One per process.
		b.AddSingleton("started_at", inject.UseConstructor(func() any {
			return time.Now()
		}))

		// One per request.
		b.AddScoped("request_id", inject.UseConstructor(func() any {
			return uuid.NewString()
		}))

		// Fresh on every access.
		b.AddTransient("greeter", inject.UseFactory(func(ctx *inject.Context) (any, error) {
			return &Greeter{
				RequestID: inject.MustResolve[string](ctx, "request_id"),
			}, nil
		}))
	}))

	router := application.Router()

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		ctx := routing.FromRequest(r)
		writeJSON(w, map[string]any{
			"app":        application.Config().App.Name,
			"request_id": inject.MustResolve[string](ctx, "request_id"),
			"started_at": inject.MustResolve[time.Time](ctx, "started_at"),
		})
	})

	router.Get("/greet/{name}", func(w http.ResponseWriter, r *http.Request) {
		greeter := inject.MustResolve[*Greeter](routing.FromRequest(r), "greeter")
		writeJSON(w, map[string]any{
			"greeting":   greeter.Greet(routing.Param(r, "name")),
			"request_id": greeter.RequestID,
		})
	})

	application.Run()
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
