package db

import (
	"testing"

	"github.com/shinyyama/omnicopy-backend/internal/config"
)

func TestBuildDSN(t *testing.T) {
	base := config.Config{DBUser: "app", DBPassword: "pw", DBName: "omnicopy", DBPort: "3306"}
	tests := []struct {
		name     string
		host     string
		instance string
		want     string
	}{
		{"tcp host", "10.0.0.5", "", "app:pw@tcp(10.0.0.5:3306)/omnicopy?"},
		{"explicit tcp", "tcp(db:3307)", "", "app:pw@tcp(db:3307)/omnicopy?"},
		{"socket path", "/var/run/mysqld.sock", "", "app:pw@unix(/var/run/mysqld.sock)/omnicopy?"},
		{"cloud sql", "ignored", "proj:region:inst", "app:pw@unix(/cloudsql/proj:region:inst)/omnicopy?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.DBHost = tt.host
			cfg.InstanceConnectionName = tt.instance
			got := BuildDSN(&cfg)
			if len(got) < len(tt.want) || got[:len(tt.want)] != tt.want {
				t.Fatalf("dsn=%q want prefix %q", got, tt.want)
			}
		})
	}
}
