package tui

import (
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
)

// openURL starts the platform's default handler for url without waiting for it.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("Browser exited with error")
		}
	}()
	return nil
}

func copyToClipboard(s string) error {
	return clipboard.WriteAll(s)
}
