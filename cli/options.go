package cli

import (
	"time"

	"github.com/medivac/portal"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigURL string `short:"c" long:"config" description:"YAML config URL"`
	portal.Options
}

type registerCommand struct {
	Name     string `short:"n" long:"name" description:"full name" required:"true"`
	Email    string `short:"e" long:"email" description:"email" required:"true"`
	Phone    string `short:"p" long:"phone" description:"phone number" required:"true"`
	Password string `short:"P" long:"password" description:"password" required:"true"`
	Confirm  string `long:"confirm" description:"password confirmation"`
	Role     string `long:"role" description:"account role" default:"patient"`
	runner   *Runner
}

type loginCommand struct {
	Email     string `short:"e" long:"email" description:"email"`
	Password  string `short:"P" long:"password" description:"password"`
	SecretURL string `long:"secret" description:"scy secret URL holding encrypted credentials"`
	Key       string `short:"k" long:"key" description:"secret encryption key" default:"blowfish://default"`
	runner    *Runner
}

type saveCredentialsCommand struct {
	Email     string `short:"e" long:"email" description:"email" required:"true"`
	Password  string `short:"P" long:"password" description:"password" required:"true"`
	SecretURL string `long:"secret" description:"scy secret URL to write" required:"true"`
	Key       string `short:"k" long:"key" description:"secret encryption key" default:"blowfish://default"`
	runner    *Runner
}

type logoutCommand struct {
	runner *Runner
}

type whoamiCommand struct {
	runner *Runner
}

type dashboardCommand struct {
	runner *Runner
}

type profileCommand struct {
	runner *Runner
}

type updateProfileCommand struct {
	Name   string `short:"n" long:"name" description:"full name" required:"true"`
	Phone  string `short:"p" long:"phone" description:"phone number"`
	runner *Runner
}

type bookingsCommand struct {
	Watch  time.Duration `short:"w" long:"watch" description:"refresh interval, e.g. 10s"`
	Count  int           `long:"count" description:"stop watching after n refreshes"`
	runner *Runner
}

type bookCommand struct {
	PickupAddress   string   `long:"pickup" description:"pickup address"`
	PickupLatitude  *float64 `long:"pickup-lat" description:"pickup latitude"`
	PickupLongitude *float64 `long:"pickup-lng" description:"pickup longitude"`
	DropAddress     string   `long:"drop" description:"drop address"`
	DropLatitude    *float64 `long:"drop-lat" description:"drop latitude"`
	DropLongitude   *float64 `long:"drop-lng" description:"drop longitude"`
	runner          *Runner
}

type idArgs struct {
	ID int `positional-arg-name:"id" required:"yes"`
}

type cancelCommand struct {
	Args   idArgs `positional-args:"yes" required:"yes"`
	runner *Runner
}

type tripsCommand struct {
	runner *Runner
}

type tripCommand struct {
	Args   idArgs `positional-args:"yes" required:"yes"`
	runner *Runner
}
