package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dstanek/roomly/internal/api"
	"github.com/dstanek/roomly/internal/auth"
	"github.com/dstanek/roomly/internal/grocery"
	"github.com/dstanek/roomly/internal/live"
	"github.com/dstanek/roomly/internal/logging"
	"github.com/dstanek/roomly/internal/prefs"
	"github.com/dstanek/roomly/internal/schedule"
	"github.com/dstanek/roomly/internal/session"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: roomly <command> [flags]

commands:
  login      -email -password [-passphrase]   sign in and refresh
  logout     [-passphrase]                    sign out and clear local state
  refresh                                     sync profile, households, invites
  select     <household-id>                   switch the active household
  chores     [-window 7d|month|6mo|all]       list upcoming chores
  groceries                                   list grocery items
  watch                                       follow live household events`)
	os.Exit(2)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type app struct {
	prefs *prefs.Store
	apic  *api.Client
	authc *auth.Client
	store *session.Store
	wsURL string
	cache string
}

func newApp() (*app, error) {
	logging.Setup(envOr("ROOMLY_LOG_LEVEL", "info"))

	p, err := prefs.Open(envOr("ROOMLY_DB_PATH", "roomly.db"))
	if err != nil {
		return nil, fmt.Errorf("open prefs: %w", err)
	}

	apic := api.New(envOr("ROOMLY_API_URL", "https://api.roomly.app"))
	profileID, err := p.ProfileID()
	if err != nil {
		return nil, err
	}
	apic.SetProfileID(profileID)

	store, err := session.New(apic, p)
	if err != nil {
		return nil, err
	}

	return &app{
		prefs: p,
		apic:  apic,
		authc: auth.New(envOr("ROOMLY_AUTH_URL", "https://auth.roomly.app")),
		store: store,
		wsURL: envOr("ROOMLY_WS_URL", "wss://api.roomly.app"),
		cache: envOr("ROOMLY_SESSION_CACHE", "roomly.session"),
	}, nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	a, err := newApp()
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer a.prefs.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		err = a.login(ctx, os.Args[2:])
	case "logout":
		err = a.logout(ctx, os.Args[2:])
	case "refresh":
		err = a.refresh(ctx)
	case "select":
		if len(os.Args) < 3 {
			usage()
		}
		err = a.selectHousehold(os.Args[2])
	case "chores":
		err = a.chores(ctx, os.Args[2:])
	case "groceries":
		err = a.groceries(ctx)
	case "watch":
		err = a.watch(ctx)
	default:
		usage()
	}

	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	passphrase := fs.String("passphrase", "", "optional passphrase to cache the session locally")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("email and password are required")
	}

	sess, err := a.authc.SignIn(ctx, *email, *password)
	if err != nil {
		return err
	}

	if err := a.prefs.SetProfileID(sess.UserID); err != nil {
		return err
	}
	a.apic.SetProfileID(sess.UserID)

	if *passphrase != "" {
		if err := auth.SaveSession(a.cache, *passphrase, *sess); err != nil {
			return err
		}
	}

	return a.refresh(ctx)
}

func (a *app) logout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	passphrase := fs.String("passphrase", "", "passphrase of the cached session, if one was saved")
	fs.Parse(args)

	// Provider sign-out is best effort: local state is wiped either way.
	if *passphrase != "" {
		if sess, err := auth.LoadSession(a.cache, *passphrase); err == nil {
			if err := a.authc.SignOut(ctx, sess.AccessToken); err != nil {
				fmt.Fprintf(os.Stderr, "warning: provider sign-out failed: %v\n", err)
			}
		}
	}
	if err := auth.ClearSession(a.cache); err != nil {
		return err
	}
	return a.store.Logout()
}

func (a *app) refresh(ctx context.Context) error {
	if err := a.store.Refresh(ctx); err != nil {
		return err
	}

	if p := a.store.Profile(); p != nil {
		fmt.Printf("Signed in as %s\n", p.DisplayName())
	}
	selected := a.store.SelectedHouseholdID()
	for _, h := range a.store.Households() {
		marker := " "
		if h.ID == selected {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, h.ID, h.Name)
	}
	if invites := a.store.Invites(); len(invites) > 0 {
		fmt.Printf("%d pending invite(s)\n", len(invites))
	}
	return nil
}

func (a *app) selectHousehold(id string) error {
	return a.store.SelectHousehold(id)
}

func parseWindow(s string) (schedule.Window, error) {
	switch s {
	case "7d":
		return schedule.Next7Days, nil
	case "month":
		return schedule.NextMonth, nil
	case "6mo":
		return schedule.Next6Months, nil
	case "all":
		return schedule.All, nil
	}
	return 0, fmt.Errorf("unknown window %q (want 7d, month, 6mo, or all)", s)
}

func (a *app) planner() (*schedule.Planner, error) {
	selected := a.store.SelectedHouseholdID()
	if selected == "" {
		return nil, fmt.Errorf("no household selected; run refresh or select first")
	}
	return schedule.NewPlanner(a.apic, selected), nil
}

func (a *app) chores(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chores", flag.ExitOnError)
	windowFlag := fs.String("window", "7d", "time window: 7d, month, 6mo, all")
	fs.Parse(args)

	window, err := parseWindow(*windowFlag)
	if err != nil {
		return err
	}

	planner, err := a.planner()
	if err != nil {
		return err
	}
	if err := planner.Load(ctx); err != nil {
		return err
	}

	upcoming := planner.Upcoming(window, time.Now())
	if len(upcoming) == 0 {
		fmt.Printf("No chores in the %s window.\n", window)
		return nil
	}
	for _, c := range upcoming {
		due := "no date"
		if d, ok := schedule.EffectiveDueDate(c); ok {
			due = d.Format("Mon Jan 2")
		}
		mode := "assigned"
		if schedule.RotationEnabled(c.RepeatRule) {
			mode = "rotating " + c.RepeatRule
		}
		fmt.Printf("%-12s %-10s %s\n", due, mode, c.Title)
	}
	return nil
}

func (a *app) groceries(ctx context.Context) error {
	selected := a.store.SelectedHouseholdID()
	if selected == "" {
		return fmt.Errorf("no household selected; run refresh or select first")
	}

	list := grocery.NewList(a.apic, selected)
	if err := list.Load(ctx); err != nil {
		return err
	}
	for _, item := range list.Items() {
		check := " "
		if item.Purchased {
			check = "x"
		}
		fmt.Printf("[%s] %-24s %s\n", check, item.Name, item.Category)
	}
	return nil
}

func (a *app) watch(ctx context.Context) error {
	selected := a.store.SelectedHouseholdID()
	if selected == "" {
		return fmt.Errorf("no household selected; run refresh or select first")
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sub := live.NewSubscriber(a.wsURL, selected, func(ev live.Event) {
		fmt.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), ev.Type)
	})

	fmt.Printf("Watching household %s (ctrl-c to stop)\n", selected)
	sub.Run(ctx)
	return nil
}
