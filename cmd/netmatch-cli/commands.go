package main

import (
	"errors"
	"fmt"
	"strings"

	"netmatch/internal/adapters/upstream"
	"netmatch/internal/core/fuzzy"
	"netmatch/internal/core/match"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// clientFrom builds an upstream client from the global flags
func clientFrom(c *cli.Context) *upstream.Client {
	return upstream.NewClient(upstream.Options{
		BaseURL:   c.String("url"),
		APIKey:    c.String("key"),
		Timeout:   c.Duration("timeout"),
		UserAgent: "netmatch-cli/" + c.App.Version,
	})
}

// queryArg joins the positional args so unquoted multi word names work
func queryArg(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", errors.New("missing query argument")
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

// networkCommand prints the best matching network as name, score and id
func networkCommand(c *cli.Context) error {
	q, err := queryArg(c)
	if err != nil {
		return err
	}
	client := clientFrom(c)
	defer client.Close()

	list, err := client.Networks(c.Context)
	if err != nil {
		return err
	}

	r, ok := fuzzy.New(c.Int("threshold")).Best(q, upstream.Names(list))
	if !ok {
		fmt.Fprintln(c.App.Writer, "no match")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "%s\t%d\t%s\n", r.Name, r.Score, list[r.Index].IDString())
	return nil
}

// groupsCommand prints one matching group name per line
func groupsCommand(c *cli.Context) error {
	q, err := queryArg(c)
	if err != nil {
		return err
	}
	client := clientFrom(c)
	defer client.Close()

	list, err := client.Groups(c.Context, c.String("type"))
	if err != nil {
		return err
	}
	printNames(c, match.Filter(q, list))
	return nil
}

// sourcesCommand prints one matching traffic source name per line
func sourcesCommand(c *cli.Context) error {
	q, err := queryArg(c)
	if err != nil {
		return err
	}
	client := clientFrom(c)
	defer client.Close()

	list, err := client.Sources(c.Context, c.String("type"))
	if err != nil {
		return err
	}
	printNames(c, match.Filter(q, list))
	return nil
}

// searchCommand fetches groups and traffic sources concurrently and prints both
func searchCommand(c *cli.Context) error {
	q, err := queryArg(c)
	if err != nil {
		return err
	}
	client := clientFrom(c)
	defer client.Close()

	var groups, sources []upstream.Entity
	g, ctx := errgroup.WithContext(c.Context)
	g.Go(func() error {
		list, err := client.Groups(ctx, "campaigns")
		if err != nil {
			return err
		}
		groups = match.Filter(q, list)
		return nil
	})
	g.Go(func() error {
		list, err := client.Sources(ctx, "")
		if err != nil {
			return err
		}
		sources = match.Filter(q, list)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "groups (%d)\n", len(groups))
	printNames(c, groups)
	fmt.Fprintf(c.App.Writer, "traffic sources (%d)\n", len(sources))
	printNames(c, sources)
	return nil
}

func printNames(c *cli.Context, list []upstream.Entity) {
	for _, e := range list {
		fmt.Fprintln(c.App.Writer, e.Name())
	}
}
