package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	_, camOpts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx, camOpts)
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s\n%s", sceneTable(sc), sc.Camera)
	return nil
}

func sceneTable(sc *scene.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Surface", "Center", "Radius"})
	for index, surface := range sc.Surfaces {
		row := []string{fmt.Sprintf("%d", index), fmt.Sprintf("%T", surface), "-", "-"}
		if sphere, isSphere := surface.(*scene.Sphere); isSphere {
			row[1] = "sphere"
			row[2] = fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", sphere.Center[0], sphere.Center[1], sphere.Center[2])
			row[3] = fmt.Sprintf("%3.3f", sphere.Radius)
		}
		table.Append(row)
	}
	table.SetFooter([]string{"", "TOTAL", "", fmt.Sprintf("%d", len(sc.Surfaces))})

	table.Render()
	return buf.String()
}
