package tnyulib

import (
	"fmt"
	"io"
	"os"

	"github.com/blang/semver"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

const releasesRepository = "techatnyu/tnyu"

type UpdateCommandArguments struct {
	Version       string
	NoInteractive bool
	Check         bool
	Debug         bool
}

// needsUpdate tells whether 'latest' is newer than the running 'version'
func needsUpdate(version string, latest *selfupdate.Release) (bool, error) {
	current, err := semver.ParseTolerant(version)
	if err != nil {
		return false, fmt.Errorf("invalid version '%s': %w", version, err)
	}
	if latest == nil {
		return false, nil
	}
	return latest.Version.GT(current), nil
}

func UpdateCommand(arguments UpdateCommandArguments, out io.Writer) error {
	if arguments.Debug {
		selfupdate.EnableLog()
	}

	latest, found, err := selfupdate.DetectLatest(releasesRepository)
	if err != nil {
		return err
	}
	if !found {
		latest = nil
	}
	update, err := needsUpdate(arguments.Version, latest)
	if err != nil {
		return err
	}
	if !update {
		fmt.Fprintf(out, "Congratulations, you are up to date with v%s\n",
			arguments.Version)
		return nil
	}

	fmt.Fprintf(out, "There is a new release for you v%s -> v%s\n",
		arguments.Version, latest.Version)
	if arguments.Check {
		fmt.Fprintln(out,
			"Use `tnyu update` or `tnyu update --no-interactive` "+
				"to update to the latest version.")
		fmt.Fprintln(out, "If you want to download and install it manually, "+
			"you can get the asset from")
		fmt.Fprintln(out, latest.AssetURL)
		return nil
	}

	if !arguments.NoInteractive {
		prompt := promptui.Prompt{
			Label:     "Do you want to update",
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Fprintln(out, "Update cancelled")
			return nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating to v%s\n", latest.Version)
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	green := color.New(color.FgGreen).SprintfFunc()
	fmt.Fprintln(out, green("Successfully updated to version v%s", latest.Version))
	return nil
}
