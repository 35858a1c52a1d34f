package chimera

import (
	"fmt"
	"path/filepath"

	"github.com/cwalker/chimera/internal/version"
	"github.com/cwalker/chimera/pkg/banner"
	"github.com/cwalker/chimera/pkg/config"
	"github.com/cwalker/chimera/pkg/content"
	"github.com/cwalker/chimera/pkg/filesystem"
	"github.com/cwalker/chimera/pkg/logging"
	"github.com/cwalker/chimera/pkg/paths"
	"github.com/cwalker/chimera/pkg/shortcuts"
	"github.com/cwalker/chimera/pkg/styles"
	"github.com/cwalker/chimera/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// env carries what every command needs once flags are parsed
type env struct {
	fs  types.FS
	cfg *config.Config
}

func (e *env) store(contentType string) *content.Store {
	loader := shortcuts.NewStore(e.fs, e.cfg.Paths().ShortcutsDir())
	return content.New(e.fs, e.cfg.ContentDir(contentType), loader)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity    int
		dataDir      string
		shortcutsDir string
		configPath   string
	)
	e := &env{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "chimera",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Directory flags are config overrides; p only locates the
			// config and log files here.
			p, err := paths.New("", "")
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}
			logging.SetupLogger(verbosity, p.LogFilePath())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			overrides := map[string]interface{}{}
			if dataDir != "" {
				overrides["content.data_dir"] = dataDir
			}
			if shortcutsDir != "" {
				overrides["shortcuts.dir"] = shortcutsDir
			}
			cfg, err := config.Load(p, configPath, overrides)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			e.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", MsgFlagDataDir)
	rootCmd.PersistentFlags().StringVar(&shortcutsDir, "shortcuts-dir", "", MsgFlagShortcutsDir)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newUpsertCmd(e))
	rootCmd.AddCommand(newDeleteCmd(e))
	rootCmd.AddCommand(newUnlinkCmd(e))
	rootCmd.AddCommand(newLinksCmd(e))
	rootCmd.AddCommand(newBannerCmd(e))
	rootCmd.AddCommand(newSanitizeCmd())
	rootCmd.AddCommand(newConfigCmd(e))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func addTypeFlag(cmd *cobra.Command, contentType *string) {
	cmd.Flags().StringVarP(contentType, "type", "t", "", MsgFlagType)
}

func newUpsertCmd(e *env) *cobra.Command {
	var contentType string
	cmd := &cobra.Command{
		Use:   "upsert <src> <platform> <name> [dst-name]",
		Short: MsgUpsertShort,
		Long:  MsgUpsertLong,
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, platform, name := args[0], args[1], args[2]
			dstName := filepath.Base(src)
			if len(args) == 4 {
				dstName = args[3]
			}

			store := e.store(contentType)
			out, err := store.Upsert(src, platform, name, dstName)
			if err != nil {
				return err
			}
			switch {
			case out == "":
				fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Muted", MsgNothingToDo))
			case store.Layout().IsDirect(platform):
				fmt.Fprintf(cmd.OutOrStdout(), MsgStored, styles.Render("FilePath", out))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), MsgLinked, styles.Render("FilePath", out))
			}
			return nil
		},
	}
	addTypeFlag(cmd, &contentType)
	return cmd
}

func newDeleteCmd(e *env) *cobra.Command {
	var contentType string
	cmd := &cobra.Command{
		Use:   "delete <platform> <name>",
		Short: MsgDeleteShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.store(contentType).Delete(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgDeleted, args[0], args[1])))
			return nil
		},
	}
	addTypeFlag(cmd, &contentType)
	return cmd
}

func newUnlinkCmd(e *env) *cobra.Command {
	var contentType string
	cmd := &cobra.Command{
		Use:   "unlink <platform> <name>",
		Short: MsgUnlinkShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.store(contentType).DeleteLink(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgUnlinked, args[0], args[1])))
			return nil
		},
	}
	addTypeFlag(cmd, &contentType)
	return cmd
}

func newLinksCmd(e *env) *cobra.Command {
	var contentType string
	cmd := &cobra.Command{
		Use:   "links <platform> <name>",
		Short: MsgLinksShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := e.store(contentType).FindLinks(args[0], args[1])
			if err != nil {
				return err
			}
			if len(links) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), MsgNoLinks, args[0], args[1])
				return nil
			}
			for _, link := range links {
				target, err := e.fs.Readlink(link)
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), link)
					continue
				}
				if _, err := e.fs.Stat(link); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), MsgDanglingLink, link, styles.Render("Warning", target))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgLinkTarget, link, styles.Render("FilePath", target))
			}
			return nil
		},
	}
	addTypeFlag(cmd, &contentType)
	return cmd
}

func newBannerCmd(e *env) *cobra.Command {
	var (
		fontPath string
		fontSize float64
	)
	cmd := &cobra.Command{
		Use:   "banner <text> <output>",
		Short: MsgBannerShort,
		Long:  MsgBannerLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := banner.Options{FontPath: e.cfg.Banner.FontPath, FontSize: e.cfg.Banner.FontSize}
			if cmd.Flags().Changed("font") {
				opts.FontPath = fontPath
			}
			if cmd.Flags().Changed("size") {
				opts.FontSize = fontSize
			}

			r, err := banner.NewRenderer(e.fs, opts)
			if err != nil {
				return err
			}
			defer r.Close()

			if err := r.Generate(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgBannerWritten, styles.Render("FilePath", args[1]))
			return nil
		},
	}
	cmd.Flags().StringVar(&fontPath, "font", "", MsgFlagFont)
	cmd.Flags().Float64Var(&fontSize, "size", banner.DefaultFontSize, MsgFlagFontSize)
	return cmd
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <text>",
		Short: MsgSanitizeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), content.Sanitize(args[0]))
			return nil
		},
	}
}

func newConfigCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := e.cfg.TOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRunE:     func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
