package cli

import (
	"fmt"
	"time"

	"github.com/medivac/portal/auth"
	"github.com/medivac/portal/route"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

func (c *registerCommand) Execute(_ []string) error {
	app, err := c.runner.portal()
	if err != nil {
		return err
	}
	response, err := app.Auth.Register(c.runner.ctx, &auth.RegisterRequest{
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Password:        c.Password,
		ConfirmPassword: c.Confirm,
		Role:            c.Role,
	})
	if err != nil {
		return fail(err, auth.RegisterFallback)
	}
	message := response.Message
	if message == "" {
		message = "Registration successful"
	}
	c.runner.printf("%v, please sign in with \"portal login\"\n", message)
	return nil
}

func (c *loginCommand) Execute(_ []string) error {
	request := &auth.LoginRequest{Email: c.Email, Password: c.Password}
	if c.SecretURL != "" {
		basic, err := c.loadSecret()
		if err != nil {
			return err
		}
		request.Email, request.Password = basic.Username, basic.Password
	}
	app, err := c.runner.portal()
	if err != nil {
		return err
	}
	if _, err = app.Auth.Login(c.runner.ctx, request); err != nil {
		return fail(err, auth.LoginFallback)
	}
	app.Navigator.Replace(route.Dashboard)
	c.runner.printf("Signed in as %v\n", request.Email)
	return nil
}

func (c *loginCommand) loadSecret() (*cred.Basic, error) {
	resource := scy.NewResource(&cred.Basic{}, c.SecretURL, c.Key)
	secret, err := c.runner.secretService().Load(c.runner.ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials %v: %w", c.SecretURL, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok || basic.Username == "" {
		return nil, fmt.Errorf("secret %v holds no login credentials", c.SecretURL)
	}
	return basic, nil
}

func (c *saveCredentialsCommand) Execute(_ []string) error {
	if err := auth.ValidateLogin(&auth.LoginRequest{Email: c.Email, Password: c.Password}); err != nil {
		return fail(err, "Invalid credentials")
	}
	resource := scy.NewResource(&cred.Basic{}, c.SecretURL, c.Key)
	secret := scy.NewSecret(&cred.Basic{Username: c.Email, Password: c.Password}, resource)
	if err := c.runner.secretService().Store(c.runner.ctx, secret); err != nil {
		return fmt.Errorf("failed to save credentials %v: %w", c.SecretURL, err)
	}
	c.runner.printf("Credentials saved to %v\n", c.SecretURL)
	return nil
}

func (c *logoutCommand) Execute(_ []string) error {
	app, err := c.runner.portal()
	if err != nil {
		return err
	}
	app.Auth.Logout(c.runner.ctx)
	app.Navigator.Replace(route.Login)
	c.runner.printf("Signed out\n")
	return nil
}

func (c *whoamiCommand) Execute(_ []string) error {
	app, err := c.runner.portal()
	if err != nil {
		return err
	}
	table := newTable(c.runner.out)
	row(table, "Backend", app.Client.BaseURL())
	row(table, "State", app.Auth.State().String())
	if app.Auth.State() == auth.Authenticated {
		claims, err := auth.InspectToken(app.Session.Get())
		if err != nil {
			row(table, "Credential", "opaque token")
		} else {
			row(table, "Email", claims.Email)
			row(table, "Role", claims.Role)
			if !claims.ExpiresAt.IsZero() {
				expires := claims.ExpiresAt.Local().Format(time.RFC1123)
				if claims.Expired(time.Now()) {
					expires += " (expired)"
				}
				row(table, "Expires", expires)
			}
		}
	}
	return table.Flush()
}
