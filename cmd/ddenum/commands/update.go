package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/l0lsec/datadogenumerator/pkg/version"
	"github.com/spf13/cobra"
)

const VersionURL = "https://raw.githubusercontent.com/l0lsec/datadogenumerator/main/scripts/version.txt"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update ddenum to the latest version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking for updates...")

		latest, err := fetchLatestVersion()
		if err != nil {
			fmt.Printf("Failed to check version: %v\n", err)
			return
		}

		switch compareVersions(latest, version.Current) {
		case 0:
			fmt.Printf("You are already running the latest version (%s).\n", version.Current)
			return
		case -1:
			fmt.Printf("You are running a newer version (%s) than the latest release (%s).\n", version.Current, latest)
			return
		}

		fmt.Printf("Found new version: %s (Current: %s)\n", latest, version.Current)
		fmt.Println("Downloading update...")

		if err := doUpdate(); err != nil {
			fmt.Printf("Update failed: %v\n", err)
			return
		}

		fmt.Println("[SUCCESS] Update successful! Please restart your terminal.")
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// compareVersions orders two vX.Y.Z strings component by component as
// numbers, so v1.10.0 sorts after v1.9.0. Returns -1, 0, or 1.
func compareVersions(a, b string) int {
	pa := strings.Split(strings.TrimPrefix(a, "v"), ".")
	pb := strings.Split(strings.TrimPrefix(b, "v"), ".")
	for i := 0; i < len(pa) || i < len(pb); i++ {
		var na, nb int
		if i < len(pa) {
			na, _ = strconv.Atoi(pa[i])
		}
		if i < len(pb) {
			nb, _ = strconv.Atoi(pb[i])
		}
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	return 0
}

func fetchLatestVersion() (string, error) {
	resp, err := http.Get(VersionURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func doUpdate() error {
	// The simplest auto-update is re-running the install script.
	cmd := exec.Command("sh", "-c", "curl -sL https://raw.githubusercontent.com/l0lsec/datadogenumerator/main/scripts/install.sh | bash")
	if runtime.GOOS == "windows" {
		cmd = exec.Command("powershell", "-Command", "irm https://raw.githubusercontent.com/l0lsec/datadogenumerator/main/scripts/install.ps1 | iex")
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
