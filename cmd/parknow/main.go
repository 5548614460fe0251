// Command parknow is a terminal client for the ParkNow parking-reservation
// service: search lots, inspect slot availability, fetch price quotes and
// place bookings, either logged in or as a guest.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DucPPhan/parknow/internal/api"
	"github.com/DucPPhan/parknow/internal/config"
	"github.com/DucPPhan/parknow/internal/pkg/logger"

	"go.uber.org/zap"
)

const usage = `usage: parknow <command> [flags]

commands:
  register    create an account
  login       log in and store the token
  logout      drop the stored token
  profile     show the logged-in profile
  search      list parking lots
  lot         show one lot's details
  slots       show the slot grid for a lot and time window
  quote       fetch a price quote
  book        place a booking (authenticated or guest)
  bookings    list my bookings
  checkin     check in to a booking
  checkout    check out of a booking
  rate        rate a completed booking
  pay         mark a booking as paid
  cancel      cancel a booking
  vehicles    manage vehicles
  favorites   manage favorite addresses

run 'parknow <command> -h' for command flags`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	log := logger.Init(cfg.Env, cfg.LogLevel)
	defer log.Sync()

	creds := newCredentialsStore(cfg.CredentialsFile)

	client, err := api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithDeviceToken(creds.DeviceToken()),
	)
	if err != nil {
		fatal(err)
	}
	if token := creds.Token(); token != "" {
		client.SetToken(token)
	}
	client.OnSessionExpired(func() {
		creds.Clear()
		fmt.Fprintln(os.Stderr, "session expired, please log in again")
	})

	app := &app{client: client, creds: creds, log: log}

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]
	if err := app.run(ctx, cmd, args); err != nil {
		log.Debug("command failed", zap.String("command", cmd), zap.Error(err))
		fatal(err)
	}
}

type app struct {
	client *api.Client
	creds  *credentialsStore
	log    *zap.Logger
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.client.Logout()
		a.creds.Clear()
		fmt.Println("logged out")
		return nil
	case "profile":
		return a.profile(ctx)
	case "search":
		return a.search(ctx, args)
	case "lot":
		return a.lot(ctx, args)
	case "slots":
		return a.slots(ctx, args)
	case "quote":
		return a.quote(ctx, args)
	case "book":
		return a.book(ctx, args)
	case "bookings":
		return a.bookings(ctx)
	case "checkin":
		return a.bookingAction(ctx, args, "checkin")
	case "checkout":
		return a.bookingAction(ctx, args, "checkout")
	case "rate":
		return a.rate(ctx, args)
	case "pay":
		return a.pay(ctx, args)
	case "cancel":
		return a.cancel(ctx, args)
	case "vehicles":
		return a.vehicles(ctx, args)
	case "favorites":
		return a.favorites(ctx, args)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "parknow:", err)
	os.Exit(1)
}
