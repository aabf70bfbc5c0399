package main

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "origin-when-cross-origin")

		if origin := r.Header.Get("Origin"); origin != "" {
			for _, allowed := range app.allowedOrigins {
				if origin == allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					break
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.isAuthenticated(r) {
			app.flash(r, "error", "Please login to continue")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		// Pages behind auth must not end up in shared caches.
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func (app *application) requireGuest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.isAuthenticated(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (app *application) isAuthenticated(r *http.Request) bool {
	return app.session.Exists(r.Context(), "userID")
}

// clientLimiter keeps one token bucket per client IP, sized so that a client
// gets at most max requests per window.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	every   rate.Limit
	burst   int
	window  time.Duration
}

func newClientLimiter(window time.Duration, max int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*rate.Limiter),
		every:   rate.Every(window / time.Duration(max)),
		burst:   max,
		window:  window,
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	lim, ok := cl.clients[ip]
	if !ok {
		lim = rate.NewLimiter(cl.every, cl.burst)
		cl.clients[ip] = lim
	}
	return lim.Allow()
}

func (app *application) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !app.limiter.allow(ip) {
			retry := int(app.limiter.window.Seconds())
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
			app.validationErrorStatus(w, http.StatusTooManyRequests,
				"Too many requests from this IP, please try again later.", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
