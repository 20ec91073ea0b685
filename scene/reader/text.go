package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/go-raytrace/asset"
	"github.com/achilleasa/go-raytrace/scene"
)

// Parse a text scene. Each line holds a directive followed by its arguments:
//
//	sphere cx cy cz radius
//	camera_eye x y z
//	camera_aspect ratio
//	camera_viewport_height h
//	camera_focal_length f
//	include path/or/url
//
// Blank lines and lines starting with '#' are ignored.
func (r *textSceneReader) parse(res *asset.Resource) error {
	if r.openPaths[res.Path()] {
		return r.emitError(res.Path(), 0, "include cycle detected")
	}
	r.openPaths[res.Path()] = true
	defer delete(r.openPaths, res.Path())

	var lineNum int
	var err error

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "include":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, "unsupported syntax for 'include'; expected 1 argument; got %d", len(lineTokens)-1)
			}
			if err = r.parseInclude(res, lineNum, lineTokens[1]); err != nil {
				return err
			}
		case "sphere":
			if err = r.parseSphere(lineTokens); err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "camera_eye":
			r.camOpts.Origin, err = parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "camera_aspect":
			r.camOpts.AspectRatio, err = parsePositiveFloat32(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "camera_viewport_height":
			r.camOpts.ViewportHeight, err = parsePositiveFloat32(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "camera_focal_length":
			r.camOpts.FocalLength, err = parsePositiveFloat32(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		default:
			return r.emitError(res.Path(), lineNum, "unknown directive '%s'", lineTokens[0])
		}
	}

	if err = scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	return nil
}

func (r *textSceneReader) parseInclude(res *asset.Resource, lineNum int, incPath string) error {
	r.pushFrame(fmt.Sprintf("referenced from %s:%d [include]", res.Path(), lineNum))

	incRes, err := asset.NewResource(incPath, res)
	if err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}
	defer incRes.Close()

	if err = r.parse(incRes); err != nil {
		return err
	}

	r.popFrame()
	return nil
}

// Parse sphere definition: sphere cx cy cz radius.
func (r *textSceneReader) parseSphere(lineTokens []string) error {
	if len(lineTokens) != 5 {
		return fmt.Errorf("unsupported syntax for 'sphere'; expected 4 arguments: cx cy cz radius; got %d", len(lineTokens)-1)
	}

	center, err := parseFloats(lineTokens[1:4])
	if err != nil {
		return err
	}

	radius, err := strconv.ParseFloat(lineTokens[4], 32)
	if err != nil {
		return err
	}

	return r.sceneGraph.AddSurface(scene.NewSphere(center, float32(radius)))
}

func parsePositiveFloat32(lineTokens []string) (float32, error) {
	val, err := parseFloat32(lineTokens)
	if err != nil {
		return 0, err
	}
	if val <= 0 {
		return 0, fmt.Errorf("'%s' expects a positive value; got %f", lineTokens[0], val)
	}
	return val, nil
}
