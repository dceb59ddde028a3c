package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe a running service: liveness, readiness and build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			base := strings.TrimRight(baseURL, "/")
			PrintHeader(fmt.Sprintf("Health check (%s)", base))

			failed := false
			for _, path := range []string{"/healthz", "/readyz"} {
				start := time.Now()
				status, body, err := probe(client, base+path)
				elapsed := time.Since(start)
				switch {
				case err != nil:
					PrintError("%s: %v", path, err)
					failed = true
				case status != http.StatusOK:
					PrintError("%s: status %d %s", path, status, body["message"])
					failed = true
				case elapsed > time.Second:
					PrintWarning("%s: ok but slow (%v)", path, elapsed)
				default:
					PrintSuccess("%s: ok (%v)", path, elapsed)
				}
			}

			if _, body, err := probe(client, base+"/version"); err == nil {
				PrintInfo("Version %v (go %v, commit %v)", body["version"], body["go_version"], body["git_commit"])
			}

			if failed {
				return fmt.Errorf("service is not healthy")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:"+getEnv("PORT", "8080"), "service base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "per-request timeout")
	return cmd
}

func probe(client *http.Client, url string) (int, map[string]interface{}, error) {
	resp, err := client.Get(url) //nolint:noctx // short-lived CLI probe
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body, nil
}
