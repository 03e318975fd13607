package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yildiz/campuscms/internal/config"
	"github.com/yildiz/campuscms/internal/pkg/auth"
)

// admintoken issues a JWT for the editorial API. The mutating endpoints
// require a bearer token; this is the simplest way to mint one for a known
// subject without a login flow.
func main() {
	subject := flag.String("subject", "admin", "token subject")
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	token, err := jwtService.GenerateToken(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
