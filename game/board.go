package game

// Camel is one racing camel. Created once at game start and mutated in
// place as it moves; Pos always mirrors the index of the spot whose stack
// contains it.
type Camel struct {
	Color Color
	Pos   int
}

// Spot is one space on the track. At most one movement card may sit on a
// spot, and only while the spot holds no camels at placement time.
type Spot struct {
	Position     int
	Camels       Stack
	MovementCard *MovementCard
}

// generateBoard rolls each camel onto the track. Each die roll of 1-3 puts
// the camel on spot 0-2; a camel landing on an occupied spot goes under the
// camels already there, matching the physical setup where tokens slide in
// at the bottom.
func generateBoard(roller DieRoller) ([]Spot, map[Color]*Camel) {
	spots := make([]Spot, BoardSpots+1)
	for i := range spots {
		spots[i].Position = i
	}

	camels := make(map[Color]*Camel, NumCamels)
	for _, color := range Colors() {
		pos := roller.Roll() - 1
		camels[color] = &Camel{Color: color, Pos: pos}
		spots[pos].Camels.PrependChain(Stack{color})
	}
	return spots, camels
}
