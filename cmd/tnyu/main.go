package tnyu

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/techatnyu/tnyu/internal/tnyulib"
	"github.com/techatnyu/tnyu/internal/tnyulib/config"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
	"github.com/urfave/cli/v2"
)

// buildClient puts together configuration, credentials, transport and
// logging from the global flags
func buildClient(c *cli.Context) (*tnyuapi.Client, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	var ask tnyulib.TokenPrompt
	if isatty.IsTerminal(os.Stdin.Fd()) {
		ask = tnyulib.PromptToken
	}
	apiRoot, token, err := tnyulib.GetHostAndToken(
		&cfg, c.String("api-root"), c.String("token"), ask,
	)
	if err != nil {
		return nil, err
	}

	httpClient, err := tnyulib.GetClient(
		c.String("cacert"), c.Duration("timeout"),
	)
	if err != nil {
		return nil, err
	}

	logger, err := tnyulib.NewLogger(c.Bool("debug"))
	if err != nil {
		return nil, err
	}

	return tnyuapi.New(
		token,
		tnyuapi.WithAPIRoot(apiRoot),
		tnyuapi.WithHTTPClient(httpClient),
		tnyuapi.WithLogger(logger),
		tnyuapi.WithHeaders(map[string]string{
			"User-Agent": "tnyu/" + tnyulib.Version,
		}),
	), nil
}

func Main() {
	errorColor := color.New(color.FgRed).SprintfFunc()
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println("Tech@NYU client, version=" + c.App.Version)
	}

	exit := func(err error) error {
		if errors.Is(err, promptui.ErrInterrupt) {
			return cli.Exit("", 1)
		}
		return cli.Exit(errorColor(fmt.Sprint(err)), 1)
	}

	// withClient wraps actions that talk to the API
	withClient := func(
		action func(c *cli.Context, client *tnyuapi.Client) error,
	) cli.ActionFunc {
		return func(c *cli.Context) error {
			client, err := buildClient(c)
			if err != nil {
				return exit(err)
			}
			err = action(c, client)
			if err != nil {
				return exit(err)
			}
			return nil
		}
	}

	jsonFlag := &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON objects instead of a table",
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load configuration from `FILE`",
			EnvVars: []string{"TNYU_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "api-root",
			Aliases: []string{"H"},
			Usage:   "The API root, or the name of a configured host",
			EnvVars: []string{"TNYU_API_ROOT"},
		},
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "The API key to use",
			EnvVars: []string{"TNYU_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "cacert",
			Usage:   "Path to CA certificate bundle file",
			EnvVars: []string{"TNYU_CACERT"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Give up on requests after this long (0 waits forever)",
			Value: 30 * time.Second,
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "Log requests to stderr",
		},
	}

	app := &cli.App{
		Name:                   "tnyu",
		Usage:                  "Read-only client for the Tech@NYU API",
		Version:                tnyulib.Version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "list",
				Aliases:   []string{"ls"},
				Usage:     "tnyu list [options] <kind>",
				ArgsUsage: "<events|people|venues|organizations|teams>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "sort-by",
						Aliases: []string{"s"},
						Usage:   "Sort by this attribute",
					},
					jsonFlag,
				},
				Action: withClient(func(c *cli.Context, client *tnyuapi.Client) error {
					if c.Args().Len() != 1 {
						return errors.New("please provide one kind")
					}
					return tnyulib.ListCommand(client, tnyulib.ListCommandArguments{
						Kind:   c.Args().First(),
						SortBy: c.String("sort-by"),
						JSON:   c.Bool("json"),
					}, os.Stdout)
				}),
			},
			{
				Name:      "get",
				Usage:     "tnyu get [options] <kind> <id>",
				ArgsUsage: "<kind> <id>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "field",
						Aliases: []string{"f"},
						Usage:   "Only show this attribute (dotted paths allowed)",
					},
					jsonFlag,
				},
				Action: withClient(func(c *cli.Context, client *tnyuapi.Client) error {
					if c.Args().Len() != 2 {
						return errors.New("please provide a kind and an id")
					}
					return tnyulib.GetCommand(client, tnyulib.GetCommandArguments{
						Kind:   c.Args().Get(0),
						Id:     c.Args().Get(1),
						Fields: c.StringSlice("field"),
						JSON:   c.Bool("json"),
					}, os.Stdout)
				}),
			},
			{
				Name:      "employer",
				Usage:     "tnyu employer <person-id>",
				ArgsUsage: "<person-id>",
				Flags:     []cli.Flag{jsonFlag},
				Action: withClient(func(c *cli.Context, client *tnyuapi.Client) error {
					if c.Args().Len() != 1 {
						return errors.New("please provide one person id")
					}
					return tnyulib.EmployerCommand(
						client, c.Args().First(), c.Bool("json"), os.Stdout,
					)
				}),
			},
			{
				Name:      "liaisons",
				Usage:     "tnyu liaisons <organization-id>",
				ArgsUsage: "<organization-id>",
				Flags:     []cli.Flag{jsonFlag},
				Action: withClient(func(c *cli.Context, client *tnyuapi.Client) error {
					if c.Args().Len() != 1 {
						return errors.New("please provide one organization id")
					}
					return tnyulib.LiaisonsCommand(
						client, c.Args().First(), c.Bool("json"), os.Stdout,
					)
				}),
			},
			{
				Name:      "venue",
				Usage:     "tnyu venue <event-id>",
				ArgsUsage: "<event-id>",
				Flags:     []cli.Flag{jsonFlag},
				Action: withClient(func(c *cli.Context, client *tnyuapi.Client) error {
					if c.Args().Len() != 1 {
						return errors.New("please provide one event id")
					}
					return tnyulib.VenueCommand(
						client, c.Args().First(), c.Bool("json"), os.Stdout,
					)
				}),
			},
			{
				Name:  "export",
				Usage: "tnyu export [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage: "Write the calendar to `FILE` ('-' for " +
							"stdout)",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name of the calendar",
					},
					&cli.BoolFlag{
						Name:  "with-venues",
						Usage: "Fetch the venue of every event as its location",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "How many venues to fetch in parallel",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "silent",
						Usage: "Whether to reduce verbosity of the output",
					},
				},
				Action: withClient(func(c *cli.Context, client *tnyuapi.Client) error {
					return tnyulib.ExportCommand(client, tnyulib.ExportCommandArguments{
						Output:     c.String("output"),
						Name:       c.String("name"),
						WithVenues: c.Bool("with-venues"),
						Workers:    c.Int("workers"),
						Silent:     c.Bool("silent"),
					}, os.Stdout)
				}),
			},
			{
				Name:  "config",
				Usage: "Manage the configuration file",
				Subcommands: []*cli.Command{
					{
						Name:  "set-token",
						Usage: "tnyu config set-token [options]",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "host",
								Usage: "Name of the host section",
								Value: "default",
							},
							&cli.BoolFlag{
								Name:  "activate",
								Usage: "Make this the active host",
							},
						},
						Action: func(c *cli.Context) error {
							cfg, err := config.Load(c.String("config"))
							if err != nil {
								return exit(fmt.Errorf(
									"error loading configuration: %w", err,
								))
							}
							var ask tnyulib.TokenPrompt
							if isatty.IsTerminal(os.Stdin.Fd()) {
								ask = tnyulib.PromptToken
							}
							err = tnyulib.SetTokenCommand(
								&cfg,
								tnyulib.SetTokenCommandArguments{
									Host:     c.String("host"),
									ApiRoot:  c.String("api-root"),
									Token:    c.String("token"),
									Activate: c.Bool("activate"),
								},
								ask,
								os.Stdout,
							)
							if err != nil {
								return exit(err)
							}
							return nil
						},
					},
				},
			},
			{
				Name:  "update",
				Usage: "Update the client binary",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Check if there is a new release",
					},
					&cli.BoolFlag{
						Name:  "no-interactive",
						Usage: "Update without asking for confirmation",
					},
				},
				Action: func(c *cli.Context) error {
					err := tnyulib.UpdateCommand(tnyulib.UpdateCommandArguments{
						Version:       c.App.Version,
						Check:         c.Bool("check"),
						NoInteractive: c.Bool("no-interactive"),
						Debug:         c.Bool("debug"),
					}, os.Stdout)
					if err != nil {
						return exit(err)
					}
					return nil
				},
			},
		},
		Flags: flags,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
