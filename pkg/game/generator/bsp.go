package generator

import (
	"mazeparts/pkg/engine/world"
)

// BSPGenerator generates mazes using Binary Space Partitioning: rooms in the
// leaves, joined by L-shaped corridors.
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() world.Cell {
	return world.Cell{Col: r.x + r.width/2, Row: r.y + r.height/2}
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
	bspMinGrid  = minRoomSize + roomPadding + 2
)

// Generate creates a new grid using the BSP algorithm
func (g *BSPGenerator) Generate(opts Options) (*world.Grid, error) {
	if err := opts.check(bspMinGrid); err != nil {
		return nil, err
	}
	cv := newCanvas(opts)

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  opts.Width - 2,
		height: opts.Height - 2,
	}

	splitBSP(cv, root, minNodeSize)
	createRooms(cv, root)
	carveRooms(cv, root)
	connectRooms(cv, root)

	rooms := collectRooms(root)
	start := rooms[cv.rng.Intn(len(rooms))]
	return cv.finish(start.center(), opts.Parts)
}

// splitBSP recursively splits a BSP node
func splitBSP(cv *canvas, node *bspNode, minSize int) {
	canSplitW := node.width >= minSize*2
	canSplitH := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && canSplitW:
		splitHorizontal = false
	case node.height > node.width && canSplitH:
		splitHorizontal = true
	case canSplitW && canSplitH:
		splitHorizontal = cv.rng.Intn(2) == 0
	case canSplitW:
		splitHorizontal = false
	case canSplitH:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + cv.rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + cv.rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(cv, node.left, minSize)
	splitBSP(cv, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(cv *canvas, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(cv, node.left)
		}
		if node.right != nil {
			createRooms(cv, node.right)
		}
		return
	}

	// Leaf node - create a room
	roomWidth := minRoomSize + cv.rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + cv.rng.Intn(node.height-minRoomSize-roomPadding+1)

	roomX := node.x + cv.rng.Intn(node.width-roomWidth)
	roomY := node.y + cv.rng.Intn(node.height-roomHeight)

	node.room = &bspRoom{x: roomX, y: roomY, width: roomWidth, height: roomHeight}
}

// carveRooms opens every room cell
func carveRooms(cv *canvas, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				cv.carve(world.Cell{Col: col, Row: row})
			}
		}
	}

	if node.left != nil {
		carveRooms(cv, node.left)
	}
	if node.right != nil {
		carveRooms(cv, node.right)
	}
}

// connectRooms connects sibling subtrees with corridors
func connectRooms(cv *canvas, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(cv, node.left)
	rightRoom := getRoom(cv, node.right)

	if leftRoom != nil && rightRoom != nil {
		from, to := leftRoom.center(), rightRoom.center()

		// L-shaped corridor
		if cv.rng.Intn(2) == 0 {
			carveCorridorHorizontal(cv, from.Row, from.Col, to.Col)
			carveCorridorVertical(cv, to.Col, from.Row, to.Row)
		} else {
			carveCorridorVertical(cv, from.Col, from.Row, to.Row)
			carveCorridorHorizontal(cv, to.Row, from.Col, to.Col)
		}
	}

	connectRooms(cv, node.left)
	connectRooms(cv, node.right)
}

// carveCorridorHorizontal carves a one cell wide corridor along a row
func carveCorridorHorizontal(cv *canvas, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		cv.carve(world.Cell{Col: col, Row: row})
	}
}

// carveCorridorVertical carves a one cell wide corridor along a column
func carveCorridorVertical(cv *canvas, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		cv.carve(world.Cell{Col: col, Row: row})
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(cv *canvas, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(cv, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(cv, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if cv.rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}
