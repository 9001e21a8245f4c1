// Command devtoken prints a signed access token for local development.
// Production tokens are issued by the identity service.
//
// Flags:
//
//	--parent   parent UUID to use as the token subject (default: random)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/heartmarshall/kalculo-backend/internal/auth"
	"github.com/heartmarshall/kalculo-backend/internal/config"
)

func main() {
	parentFlag := flag.String("parent", "", "parent UUID to use as the token subject (default: random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	parentID := uuid.New()
	if *parentFlag != "" {
		parentID, err = uuid.Parse(*parentFlag)
		if err != nil {
			log.Fatalf("parse --parent: %v", err)
		}
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL).
		GenerateAccessToken(parentID)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Printf("parent_id=%s\n%s\n", parentID, token)
}
