package portal

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/medivac/portal/api"
	"github.com/medivac/portal/auth"
	"github.com/medivac/portal/route"
	"github.com/medivac/portal/service"
	"github.com/medivac/portal/session"
	"github.com/medivac/portal/view"
)

// Version is reported in the default User-Agent.
const Version = "0.3.0"

// Portal wires every client component around one session.
type Portal struct {
	Options   *Options
	Session   *session.Session
	Client    *api.Client
	Auth      *auth.Gateway
	Patient   *service.Patient
	Guard     *route.Guard
	Navigator *route.Navigator
}

// Dashboard loads the landing screen data.
func (p *Portal) Dashboard(ctx context.Context) (*view.Dashboard, error) {
	return view.LoadDashboard(ctx, p.Patient.Profiles, p.Patient.Bookings)
}

// New builds a portal and restores the persisted credential. Extra api
// options are applied after the defaults.
func New(ctx context.Context, options *Options, apiOptions ...api.Option) (*Portal, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	if u, err := url.Parse(options.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", options.BaseURL)
	}

	sess := session.New(
		session.WithStore(newStore(options.SessionURL)),
		session.WithLogger(log.Default()),
	)
	sess.Restore(ctx)

	opts := []api.Option{
		api.WithTimeout(options.Timeout),
		api.WithHeader("User-Agent", options.UserAgent),
		api.WithInterceptors(api.BearerAuth(sess), api.RequestID()),
	}
	client := api.New(options.BaseURL, append(opts, apiOptions...)...)
	guard := route.NewGuard(sess)
	return &Portal{
		Options:   options,
		Session:   sess,
		Client:    client,
		Auth:      auth.NewGateway(client, sess),
		Patient:   service.NewPatient(client),
		Guard:     guard,
		Navigator: route.NewNavigator(guard),
	}, nil
}

func newStore(URL string) session.Store {
	if URL == MemorySession {
		return session.NewMemoryStore()
	}
	return session.NewURLStore(URL)
}
