package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title LLDAP Gateway API
// @description Token issuance and the administrative user API.
// @version 1
// @host localhost:17170
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lldap-gateway",
		Short:         "Token gateway and administrative API for the user directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newHashPasswordCmd())
	return root
}
