package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build information, set with -ldflags "-X main.buildVersion=..."
var (
	buildVersion = ""
	buildCommit  = ""
	buildTime    = ""
)

// versionInfo holds version information
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsYAML represents the versions.yaml file structure
type versionsYAML struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

func (c *cli) versionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: VersionShort,
		Args:  cobra.NoArgs,
		RunE:  c.runVersion,
	}
	cmd.Flags().StringP(FlagFormat, FlagFormatShort, FlagDefaultFormat, UsageFormat)
	return cmd
}

func (c *cli) runVersion(_ *cobra.Command, _ []string) error {
	info := getVersionInfo(versionsSearchPaths())

	switch format := c.config.GetString(FlagFormat); format {
	case OutputFormatJSON:
		jsonBytes, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(c.stdout, string(jsonBytes))
	case OutputFormatText:
		outputVersionText(info, c.stdout)
	default:
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, errors.New(format))
	}
	return nil
}

// versionsSearchPaths lists where versions.yaml may live relative to cwd
func versionsSearchPaths() []string {
	return []string{
		VersionsFileName,
		filepath.Join("..", VersionsFileName),
		filepath.Join("..", "..", VersionsFileName),
	}
}

// getVersionInfo prefers linker-set values, then the first readable
// versions.yaml among paths
func getVersionInfo(paths []string) *versionInfo {
	info := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}

		setIfPresent(&info.Version, vy.Project.Version)
		setIfPresent(&info.Commit, vy.Git.Commit)
		setIfPresent(&info.Branch, vy.Git.Branch)
		setIfPresent(&info.BuildTime, vy.Build.Time)
		setIfPresent(&info.GoVersion, vy.Build.GoVersion)
		break
	}

	setIfPresent(&info.Version, buildVersion)
	setIfPresent(&info.Commit, buildCommit)
	setIfPresent(&info.BuildTime, buildTime)
	return info
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func outputVersionText(v *versionInfo, w io.Writer) {
	fmt.Fprintf(w, VersionTextTemplate+"\n",
		v.Version, v.Commit, v.Branch, v.BuildTime, v.GoVersion)
}
