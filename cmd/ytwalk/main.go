// Package main provides the ytwalk CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/acrompton/ytwalk/internal/config"
	"github.com/acrompton/ytwalk/internal/display"
	"github.com/acrompton/ytwalk/pkg/youtube"
)

var version = "0.1.0"

const requestTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	key     string
	cfgPath string
	verbose bool
}

// newClient resolves the developer key and builds an API client. Search
// listings only ever render snippet data, so snippet is the default part.
func (rf *rootFlags) newClient() (*youtube.Client, error) {
	if rf.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	key, err := config.ResolveKey(rf.key, rf.cfgPath)
	if err != nil {
		return nil, err
	}

	opts := []youtube.ClientOption{youtube.WithParts("id", "snippet")}
	if baseURL := os.Getenv("YTWALK_API_URL"); baseURL != "" {
		opts = append(opts, youtube.WithBaseURL(baseURL))
	}
	return youtube.NewClient(key, opts...)
}

// newRootCmd creates the root command for the ytwalk CLI.
func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "ytwalk",
		Short:   "Walk YouTube search results and resources from the terminal",
		Long:    "ytwalk queries the YouTube Data API, walking paginated result sets lazily and fetching resource details only when asked.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("ytwalk version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rf.key, "key", "", "Developer API key (overrides environment and config file)")
	rootCmd.PersistentFlags().StringVar(&rf.cfgPath, "config", "", "Path to INI config file with [youtube] developer_key")
	rootCmd.PersistentFlags().BoolVarP(&rf.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newSearchCmd(rf))
	rootCmd.AddCommand(newVideoCmd(rf))
	rootCmd.AddCommand(newChannelCmd(rf))
	rootCmd.AddCommand(newPlaylistCmd(rf))

	return rootCmd
}

// newSearchCmd creates the search subcommand.
func newSearchCmd(rf *rootFlags) *cobra.Command {
	var resourceType string
	var limit int
	var after string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search YouTube",
		Long:  "Search YouTube for videos, channels and playlists, walking as many result pages as the limit requires.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rf.newClient()
			if err != nil {
				return err
			}

			opts := youtube.SearchOptions{Query: args[0], Type: resourceType}
			if after != "" {
				t, err := time.Parse("2006-01-02", after)
				if err != nil {
					return fmt.Errorf("invalid --after date %q: use YYYY-MM-DD", after)
				}
				opts.PublishedAfter = t
			}

			cursor, err := client.Search(opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			var rows []display.Row
			for len(rows) < limit {
				r, err := cursor.Next(ctx)
				if errors.Is(err, youtube.ErrDone) {
					break
				}
				if err != nil {
					return err
				}
				rows = append(rows, rowFromResource(ctx, r))
			}

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatList(rows))
			if total, ok := cursor.TotalResults(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "\n~%d results reported by the service (estimate)\n", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&resourceType, "type", "t", "", "Restrict results to one type (video, channel, playlist)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of results to display")
	cmd.Flags().StringVar(&after, "after", "", "Only resources published after this date (YYYY-MM-DD)")

	return cmd
}

// newVideoCmd creates the video subcommand.
func newVideoCmd(rf *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video <id-or-url>",
		Short: "Show details for a single video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rf.newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			arg := args[0]
			var video *youtube.Video
			if id := youtube.VideoIDFromURL(arg); id != "" {
				video, err = client.Video(ctx, id)
			} else {
				video, err = client.Video(ctx, arg)
			}
			if err != nil {
				return err
			}

			d := display.Detail{Row: rowFromResource(ctx, video)}
			d.Description, _ = video.Description(ctx)
			d.Duration, _ = video.Duration(ctx)
			d.Views, _ = video.ViewCount(ctx)
			d.Likes, _ = video.LikeCount(ctx)
			d.Comments, _ = video.CommentCount(ctx)
			d.Tags, _ = video.Tags(ctx)
			d.URL = video.URL()

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDetail(d))
			return nil
		},
	}

	return cmd
}

// newChannelCmd creates the channel subcommand.
func newChannelCmd(rf *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel <id>",
		Short: "Show details for a single channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rf.newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			channel, err := client.Channel(ctx, args[0])
			if err != nil {
				return err
			}

			d := display.Detail{Row: rowFromResource(ctx, channel)}
			d.Description, _ = channel.Description(ctx)
			d.Views, _ = channel.ViewCount(ctx)
			d.Subscribers, _ = channel.SubscriberCount(ctx)
			d.Items, _ = channel.VideoCount(ctx)

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDetail(d))
			return nil
		},
	}

	return cmd
}

// newPlaylistCmd creates the playlist subcommand.
func newPlaylistCmd(rf *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlist <id>",
		Short: "Show details for a single playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rf.newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			playlist, err := client.Playlist(ctx, args[0])
			if err != nil {
				return err
			}

			d := display.Detail{Row: rowFromResource(ctx, playlist)}
			d.Description, _ = playlist.Description(ctx)
			d.Items, _ = playlist.ItemCount(ctx)

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDetail(d))
			return nil
		},
	}

	return cmd
}

// rowFromResource extracts listing fields from whatever partitions the
// resource already carries. Queries here always request snippet, so these
// accessors resolve from cache; attributes the service left empty are shown
// as blanks rather than failing the listing.
func rowFromResource(ctx context.Context, r youtube.Resource) display.Row {
	row := display.Row{Kind: string(r.Kind()), ID: r.ID()}

	switch res := r.(type) {
	case *youtube.Video:
		row.Title, _ = res.Title(ctx)
		row.ChannelName, _ = res.ChannelTitle(ctx)
		row.PublishedAt, _ = res.PublishedAt(ctx)
	case *youtube.Channel:
		row.Title, _ = res.Title(ctx)
		row.PublishedAt, _ = res.PublishedAt(ctx)
	case *youtube.Playlist:
		row.Title, _ = res.Title(ctx)
		row.ChannelName, _ = res.ChannelTitle(ctx)
		row.PublishedAt, _ = res.PublishedAt(ctx)
	}

	return row
}
