package cli

import (
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

type flagSource interface {
	Flags() []cli.Flag
}

// collectFlags gathers the flags of every configuration section in order
func collectFlags(sources ...flagSource) []cli.Flag {
	return lo.FlatMap(sources, func(src flagSource, _ int) []cli.Flag {
		return src.Flags()
	})
}
