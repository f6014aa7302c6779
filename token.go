package main

import (
	"fmt"
	"time"

	"github.com/Drolfothesgnir/minidom/token"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var tokenFlags struct {
	subject string
	ttl     time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the protected routes",
	Long: `Mint a bearer token signed with TOKEN_SYMMETRIC_KEY.

The token is printed to stdout. When --ttl is not set, ACCESS_TOKEN_DURATION
from the config is used.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenFlags.subject, "subject", "cli", "token subject")
	tokenCmd.Flags().DurationVar(&tokenFlags.ttl, "ttl", 0, "token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	ttl := tokenFlags.ttl
	if ttl <= 0 {
		ttl = config.AccessTokenDuration
	}

	maker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return err
	}

	accessToken, payload, err := maker.CreateToken(tokenFlags.subject, ttl)
	if err != nil {
		return err
	}

	log.Info().
		Str("subject", payload.Subject).
		Time("expires_at", payload.ExpiredAt).
		Msg("token created")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), accessToken)
	return err
}
