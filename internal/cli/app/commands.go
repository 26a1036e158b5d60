package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/muusmart/muusmart/pkg/muusdk"
	"github.com/muusmart/muusmart/pkg/session"
)

func (app *Application) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("login requires -u <username> and -p <password>")
	}

	err := app.session.Login(ctx, session.Credentials{
		Username: *username,
		Password: *password,
	})
	switch {
	case errors.Is(err, session.ErrAlreadyExpired):
		return fmt.Errorf("the gateway issued an already expired token, try again")
	case errors.Is(err, session.ErrInvalidCredentials):
		return fmt.Errorf("invalid username or password")
	case err != nil:
		return err
	}

	fmt.Printf("logged in as %s\n", app.session.Principal())
	return nil
}

func (app *Application) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	email := fs.String("e", "", "email")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" || *password == "" {
		return fmt.Errorf("register requires -u <username>, -e <email> and -p <password>")
	}

	err := app.session.Register(ctx, session.Registration{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	switch {
	case errors.Is(err, session.ErrAlreadyExpired):
		return fmt.Errorf("the gateway issued an already expired token, try again")
	case errors.Is(err, session.ErrRegistrationFailed):
		return fmt.Errorf("registration failed: %v", err)
	case err != nil:
		return err
	}

	fmt.Printf("welcome to MuuSmart, %s\n", app.session.Principal())
	return nil
}

func (app *Application) cmdLogout(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("logout takes no arguments")
	}
	app.session.Logout(session.LogoutManual)
	fmt.Println("logged out")
	return nil
}

func (app *Application) cmdWhoami(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("whoami takes no arguments")
	}

	state := app.session.State()
	if state.SessionExpiredReason != "" {
		fmt.Println("session expired, log in again")
		app.session.ClearSessionExpiredReason()
		return nil
	}
	if state.Token == "" {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("logged in as %s\n", app.session.Principal())
	if expiry, ok := app.session.ExpiresAt(); ok {
		fmt.Printf("session expires %s (%s)\n",
			expiry.Format(time.RFC3339), time.Until(expiry).Round(time.Second))
	}
	return nil
}

func (app *Application) cmdAnimals(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("animals requires a subcommand: list | get <id>")
	}

	switch args[0] {
	case "list":
		animals, err := app.client.ListAnimals(ctx)
		if err != nil {
			return app.describeAPIError(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTAG\tBREED\tWEIGHT\tAGE\tSTATUS\tSTABLE")
		for _, a := range animals {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%d\t%s\t%d\n",
				a.ID, a.Tag, a.Breed, a.Weight, a.Age, a.Status, a.StableID)
		}
		return w.Flush()

	case "get":
		if len(args) != 2 {
			return fmt.Errorf("animals get requires an id")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid animal id %q", args[1])
		}

		animal, err := app.client.GetAnimal(ctx, id)
		if err != nil {
			return app.describeAPIError(err)
		}

		fmt.Printf("animal %d (%s)\n", animal.ID, animal.Tag)
		fmt.Printf("  breed:   %s\n", animal.Breed)
		fmt.Printf("  weight:  %.1f kg\n", animal.Weight)
		fmt.Printf("  age:     %d\n", animal.Age)
		fmt.Printf("  status:  %s\n", animal.Status)
		if animal.FeedLevel != nil {
			fmt.Printf("  feed:    %.1f\n", *animal.FeedLevel)
		}
		fmt.Printf("  stable:  %d\n", animal.StableID)
		return nil

	default:
		return fmt.Errorf("unknown animals subcommand %q", args[0])
	}
}

func (app *Application) cmdStables(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] != "list" {
		return fmt.Errorf("stables requires a subcommand: list")
	}

	stables, err := app.client.ListStables(ctx)
	if err != nil {
		return app.describeAPIError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCAPACITY")
	for _, s := range stables {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", s.ID, s.Name, s.Location, s.Capacity)
	}
	return w.Flush()
}

func (app *Application) cmdMilk(ctx context.Context, args []string) error {
	id, err := summaryAnimalID("milk", args)
	if err != nil {
		return err
	}

	summary, err := app.client.GetMilkSummary(ctx, id)
	if err != nil {
		return app.describeAPIError(err)
	}

	fmt.Printf("milk production for animal %d\n", id)
	fmt.Printf("  average: %s L/day\n", formatAggregate(summary.AverageLiters))
	fmt.Printf("  total:   %s L\n", formatAggregate(summary.TotalLiters))
	return nil
}

func (app *Application) cmdWeights(ctx context.Context, args []string) error {
	id, err := summaryAnimalID("weights", args)
	if err != nil {
		return err
	}

	summary, err := app.client.GetWeightSummary(ctx, id)
	if err != nil {
		return app.describeAPIError(err)
	}

	fmt.Printf("weight trend for animal %d\n", id)
	fmt.Printf("  last weight:  %s kg\n", formatAggregate(summary.LastWeight))
	fmt.Printf("  gain 7 days:  %s kg\n", formatAggregate(summary.Gain7Days))
	fmt.Printf("  gain 30 days: %s kg\n", formatAggregate(summary.Gain30Days))
	return nil
}

func (app *Application) cmdAsk(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("ask requires a question")
	}

	resp, err := app.client.AskAssistant(ctx, muusdk.AssistantChatRequest{
		Question: strings.Join(args, " "),
	})
	if err != nil {
		return app.describeAPIError(err)
	}

	fmt.Println(resp.Answer)
	return nil
}

func summaryAnimalID(cmd string, args []string) (int64, error) {
	if len(args) != 2 || args[0] != "summary" {
		return 0, fmt.Errorf("%s requires a subcommand: summary <animal-id>", cmd)
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid animal id %q", args[1])
	}
	return id, nil
}

// formatAggregate renders a nullable aggregate; the gateway reports null
// when an animal has no records yet.
func formatAggregate(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// describeAPIError folds the forced-logout case into a friendlier message.
// When a request is rejected with 401/403 the unauthorized signal has
// already ended the session by the time the error reaches us.
func (app *Application) describeAPIError(err error) error {
	if muusdk.IsUnauthorized(err) || muusdk.IsForbidden(err) {
		if reason := app.session.State().SessionExpiredReason; reason != "" {
			return fmt.Errorf("session expired, log in again")
		}
		return fmt.Errorf("not authorized, log in first")
	}
	return err
}
