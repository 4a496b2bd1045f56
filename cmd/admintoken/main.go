// Command admintoken signs a bearer token for the knowledge base admin routes
// using the configured ADMIN_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/yanqian/support-qa/internal/infra/config"
	httpiface "github.com/yanqian/support-qa/internal/interface/http"
)

func main() {
	subject := flag.String("subject", "ops", "token subject recorded in reload logs")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Admin.Enabled {
		log.Fatal("admin routes are disabled; set ADMIN_ENABLED=true")
	}
	token, err := httpiface.SignAdminToken(cfg.Admin.Secret, *subject, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
