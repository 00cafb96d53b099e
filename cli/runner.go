package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/medivac/portal"
	"github.com/medivac/portal/api"
	"github.com/medivac/portal/route"
	"github.com/viant/scy"
)

// ErrNotSignedIn is returned by protected commands without a stored credential.
var ErrNotSignedIn = errors.New("not signed in, run \"portal login\" first")

// Failure is a command error carrying the message shown to the user.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &Failure{Message: api.Message(err, fallback), Err: err}
}

// Runner parses a command line and executes the selected command.
type Runner struct {
	Options    *Options
	out        io.Writer
	ctx        context.Context
	app        *portal.Portal
	secrets    *scy.Service
	apiOptions []api.Option
}

// Run executes args against stdout.
func Run(ctx context.Context, args []string) error {
	return NewRunner(os.Stdout).Run(ctx, args)
}

// Run parses args and executes the selected command. Help requests are
// printed and reported as success.
func (r *Runner) Run(ctx context.Context, args []string) error {
	r.ctx = ctx
	parser := flags.NewParser(r.Options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "portal"
	if err := r.addCommands(parser); err != nil {
		return err
	}
	_, err := parser.ParseArgs(args)
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		_, _ = fmt.Fprintln(r.out, flagsErr.Message)
		return nil
	}
	return err
}

func (r *Runner) addCommands(parser *flags.Parser) error {
	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"register", "create a patient account", &registerCommand{runner: r}},
		{"login", "sign in and store the credential", &loginCommand{runner: r}},
		{"save-credentials", "encrypt login credentials into a scy secret", &saveCredentialsCommand{runner: r}},
		{"logout", "forget the stored credential", &logoutCommand{runner: r}},
		{"whoami", "show the session state", &whoamiCommand{runner: r}},
		{"dashboard", "show profile and pending bookings", &dashboardCommand{runner: r}},
		{"profile", "show the profile", &profileCommand{runner: r}},
		{"update-profile", "change name or phone", &updateProfileCommand{runner: r}},
		{"bookings", "list bookings", &bookingsCommand{runner: r}},
		{"book", "request an ambulance", &bookCommand{runner: r}},
		{"cancel", "cancel a pending booking", &cancelCommand{runner: r}},
		{"trips", "list trip history", &tripsCommand{runner: r}},
		{"trip", "show trip details", &tripCommand{runner: r}},
	}
	for _, command := range commands {
		if _, err := parser.AddCommand(command.name, command.short, command.short, command.data); err != nil {
			return fmt.Errorf("failed to add command %v: %w", command.name, err)
		}
	}
	return nil
}

// portal builds the portal once per run from config, environment and flags.
func (r *Runner) portal() (*portal.Portal, error) {
	if r.app != nil {
		return r.app, nil
	}
	options, err := portal.LoadOptions(r.ctx, r.Options.ConfigURL)
	if err != nil {
		return nil, err
	}
	options.Merge(&r.Options.Options)
	app, err := portal.New(r.ctx, options, r.apiOptions...)
	if err != nil {
		return nil, err
	}
	r.app = app
	return app, nil
}

// open navigates to path through the guard and fails unless the page renders.
func (r *Runner) open(path string) (*portal.Portal, *route.Decision, error) {
	app, err := r.portal()
	if err != nil {
		return nil, nil, err
	}
	decision := app.Navigator.Push(path)
	switch {
	case decision.NotFound():
		return nil, nil, fmt.Errorf("unknown page %v", path)
	case decision.Page == route.PageLogin:
		return nil, nil, ErrNotSignedIn
	}
	return app, decision, nil
}

func (r *Runner) secretService() *scy.Service {
	if r.secrets == nil {
		r.secrets = scy.New()
	}
	return r.secrets
}

func (r *Runner) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func NewRunner(out io.Writer, apiOptions ...api.Option) *Runner {
	return &Runner{Options: &Options{}, out: out, ctx: context.Background(), apiOptions: apiOptions}
}
