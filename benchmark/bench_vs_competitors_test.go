package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/argot-cli/argot/argot"
)

// Benchmark simple flag parsing with int and bool flags.
// All three parse the same command line for fair comparison.

func BenchmarkSimpleParse_Argot(b *testing.B) {
	schema := argot.MustCompile([]argot.Descriptor{
		{Arg: "-p/--port value", Help: "Server port", Type: argot.Int, Default: "8080"},
		{Arg: "-v/--verbose", Help: "Verbose output"},
	})

	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = schema.ParseAll(argot.NewStream(args))
	}
}

func BenchmarkSimpleParse_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().IntP("port", "p", 8080, "Server port")
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleParse_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark command dispatch with a shared flag and per-command flags.

func BenchmarkCommands_Argot(b *testing.B) {
	set := argot.MustCompileCommands("bench",
		[]argot.Descriptor{
			{Arg: "--global", Help: "Global flag"},
		},
		[]*argot.Command{
			{Name: "serve", Help: "Start server", Args: []argot.Descriptor{
				{Arg: "-p/--port value", Help: "Server port", Type: argot.Int, Default: "8080"},
				{Arg: "--host value", Help: "Server host", Default: "localhost"},
			}},
		})

	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = set.ParseAll(argot.NewStream(args))
	}
}

func BenchmarkCommands_Cobra(b *testing.B) {
	args := []string{"--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		rootCmd.PersistentFlags().Bool("global", false, "Global flag")

		serveCmd := &cobra.Command{
			Use: "serve",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		serveCmd.Flags().IntP("port", "p", 8080, "Server port")
		serveCmd.Flags().String("host", "localhost", "Server host") // No -h shorthand, conflicts with help
		rootCmd.AddCommand(serveCmd)

		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkCommands_Urfave(b *testing.B) {
	args := []string{"bench", "--global", "serve", "--port", "9000", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "global", Usage: "Global flag"},
			},
			Commands: []*cli.Command{
				{
					Name: "serve",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
						&cli.StringFlag{Name: "host", Value: "localhost", Usage: "Server host"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark many flags (realistic CLI tool scenario).

func BenchmarkManyFlags_Argot(b *testing.B) {
	schema := argot.MustCompile([]argot.Descriptor{
		{Arg: "--flag1 value", Help: "Flag 1", Default: "value1"},
		{Arg: "--flag2 value", Help: "Flag 2", Default: "value2"},
		{Arg: "--flag3 value", Help: "Flag 3", Default: "value3"},
		{Arg: "--flag4 value", Help: "Flag 4", Default: "value4"},
		{Arg: "--flag5 value", Help: "Flag 5", Default: "value5"},
		{Arg: "-p/--port value", Help: "Port", Type: argot.Int, Default: "8080"},
		{Arg: "-v/--verbose", Help: "Verbose"},
		{Arg: "--debug", Help: "Debug"},
		{Arg: "--quiet", Help: "Quiet"},
		{Arg: "--force", Help: "Force"},
	})

	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = schema.ParseAll(argot.NewStream(args))
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().String("flag1", "value1", "Flag 1")
		rootCmd.Flags().String("flag2", "value2", "Flag 2")
		rootCmd.Flags().String("flag3", "value3", "Flag 3")
		rootCmd.Flags().String("flag4", "value4", "Flag 4")
		rootCmd.Flags().String("flag5", "value5", "Flag 5")
		rootCmd.Flags().IntP("port", "p", 8080, "Port")
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose")
		rootCmd.Flags().Bool("debug", false, "Debug")
		rootCmd.Flags().Bool("quiet", false, "Quiet")
		rootCmd.Flags().Bool("force", false, "Force")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	args := []string{
		"bench",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "flag1", Value: "value1", Usage: "Flag 1"},
				&cli.StringFlag{Name: "flag2", Value: "value2", Usage: "Flag 2"},
				&cli.StringFlag{Name: "flag3", Value: "value3", Usage: "Flag 3"},
				&cli.StringFlag{Name: "flag4", Value: "value4", Usage: "Flag 4"},
				&cli.StringFlag{Name: "flag5", Value: "value5", Usage: "Flag 5"},
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose"},
				&cli.BoolFlag{Name: "debug", Usage: "Debug"},
				&cli.BoolFlag{Name: "quiet", Usage: "Quiet"},
				&cli.BoolFlag{Name: "force", Usage: "Force"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
