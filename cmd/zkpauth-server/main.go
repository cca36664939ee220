// Command zkpauth-server runs the authentication RPC service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zkpauth/internal/serverapi"
)

func main() {
	flags := flag.NewFlagSet("zkpauth-server", flag.ExitOnError)
	listen := flags.String("listen", "", "address to listen on: PORT, IP, or IP:PORT [default 127.0.0.1:3000] [env PORT]")
	flags.StringVar(listen, "l", "", "shorthand for --listen")
	flags.Parse(os.Args[1:])

	addr, err := serverapi.ResolveListenAddr(*listen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zkpauth-server: %v\n", err)
		os.Exit(1)
	}

	srv := serverapi.NewServer()
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "zkpauth-server: %v\n", err)
		os.Exit(1)
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "zkpauth-server: graceful shutdown failed: %v\n", err)
			os.Exit(1)
		}
	}
}
