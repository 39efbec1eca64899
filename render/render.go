// Package render is the export glue over the profile generators: DXF
// drawings for wire EDM, SVG and plots for visual checks, coordinate
// files for manual CAD import, and sdfx solids for STL meshing. It
// consumes PointSequence values opaquely and never reorders points;
// traversal order encodes material winding.
package render

import (
	"github.com/imnuman/hdrive"
)

// layerOrder fixes the role traversal order so output files are
// reproducible run to run.
var layerOrder = []hdrive.Role{
	hdrive.RoleTeeth,
	hdrive.RoleInnerBore,
	hdrive.RoleOuterRim,
	hdrive.RoleBoltHole,
	hdrive.RoleCam,
	hdrive.RoleBearingSeat,
	hdrive.RoleHub,
	hdrive.RoleBore,
}

// layerName maps roles to the drawing layer names used on the original
// manufacturing drawings.
var layerName = map[hdrive.Role]string{
	hdrive.RoleTeeth:       "TEETH",
	hdrive.RoleInnerBore:   "INNER",
	hdrive.RoleOuterRim:    "OUTER",
	hdrive.RoleBoltHole:    "HOLES",
	hdrive.RoleCam:         "CAM",
	hdrive.RoleBearingSeat: "BEARING",
	hdrive.RoleHub:         "HUB",
	hdrive.RoleBore:        "BORE",
}
