package database

import (
	"net/url"
	"testing"

	"github.com/matryer/is"
)

func TestConfig_connectionURL(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantSSLMode string
	}{
		{
			name:        "tls required by default",
			cfg:         Config{User: "pyp", Password: "p@ss", Host: "db:5432", Name: "picoyplaca"},
			wantSSLMode: "require",
		},
		{
			name:        "tls disabled",
			cfg:         Config{User: "pyp", Password: "p@ss", Host: "db:5432", Name: "picoyplaca", DisableTLS: true},
			wantSSLMode: "disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			u, err := url.Parse(tt.cfg.connectionURL())
			is.NoErr(err)
			is.Equal(u.Scheme, "postgres")
			is.Equal(u.Host, "db:5432")
			is.Equal(u.Path, "/picoyplaca")
			is.Equal(u.User.Username(), "pyp")
			password, _ := u.User.Password()
			is.Equal(password, "p@ss")
			is.Equal(u.Query().Get("sslmode"), tt.wantSSLMode)
			is.Equal(u.Query().Get("timezone"), "utc")
		})
	}
}
