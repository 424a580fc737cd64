package ballworld

import (
	"math"
	"math/rand"

	commontypes "github.com/ballarena/ballarena/common/types"
	"github.com/ballarena/ballarena/common/utils"
	"github.com/ballarena/ballarena/common/utils/vector"
	"github.com/bytearena/ecs"
)

// BallworldGame is the whole simulation: a bounded world, one player-driven
// robot, and a set of balls the robot can pick up and carry around. It is
// advanced by an external clock calling Step once per frame.
type BallworldGame struct {
	ticknum int

	gameID string
	bounds commontypes.Bounds
	rng    *rand.Rand

	manager *ecs.Manager

	positionComponent   *ecs.Component
	rigidBodyComponent  *ecs.Component
	steeringComponent   *ecs.Component
	carrierComponent    *ecs.Component
	carryableComponent  *ecs.Component
	appearanceComponent *ecs.Component

	physicalView  *ecs.View
	carryableView *ecs.View

	actions *ActionController

	robot *ecs.Entity
}

func NewBallworldGame(gameID string, bounds commontypes.Bounds, rng *rand.Rand) *BallworldGame {
	manager := ecs.NewManager()

	game := &BallworldGame{
		gameID:  gameID,
		bounds:  bounds,
		rng:     rng,
		manager: manager,

		positionComponent:   manager.NewComponent(),
		rigidBodyComponent:  manager.NewComponent(),
		steeringComponent:   manager.NewComponent(),
		carrierComponent:    manager.NewComponent(),
		carryableComponent:  manager.NewComponent(),
		appearanceComponent: manager.NewComponent(),

		actions: NewActionController(),
	}

	game.physicalView = manager.CreateView(
		game.positionComponent,
		game.rigidBodyComponent,
	)

	game.carryableView = manager.CreateView(
		game.carryableComponent,
		game.positionComponent,
		game.rigidBodyComponent,
	)

	// Le robot apparaît au centre du monde
	center := vector.MakeVector2(
		bounds.MinX+bounds.Width()/2,
		bounds.MinY+bounds.Height()/2,
	)

	robot, err := game.NewEntityRobot(center)
	utils.Check(err, "Could not create the robot")
	game.robot = robot

	return game
}

func (game *BallworldGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

// Step advances the simulation by dt. Operations are ordered: intents first,
// then integration, then carry resolution, then bounds enforcement.
func (game *BallworldGame) Step(ticknum int, dt float64) {

	game.ticknum = ticknum

	///////////////////////////////////////////////////////////////////////////
	// On applique les intentions de déplacement au robot
	///////////////////////////////////////////////////////////////////////////
	systemIntents(game)

	///////////////////////////////////////////////////////////////////////////
	// On met l'état des objets physiques à jour
	///////////////////////////////////////////////////////////////////////////
	systemPhysics(game, dt)

	///////////////////////////////////////////////////////////////////////////
	// On résout la prise et la dépose de balle
	///////////////////////////////////////////////////////////////////////////
	systemCarry(game)

	///////////////////////////////////////////////////////////////////////////
	// On contraint les positions aux limites du monde
	///////////////////////////////////////////////////////////////////////////
	systemBounds(game)
}

// RandomInt returns a uniform random integer in [min, max], both inclusive.
func (game *BallworldGame) RandomInt(min int, max int) int {
	return game.rng.Intn(max-min+1) + min
}

// CreateBall registers a new ball at the given position. Creation outside the
// world bounds is rejected, it never clamps; only motion clamps (systemBounds).
func (game *BallworldGame) CreateBall(x float64, y float64) (*ecs.Entity, error) {
	if math.IsNaN(x) {
		return nil, NewInvalidParameterError("x", x)
	}

	if math.IsNaN(y) {
		return nil, NewInvalidParameterError("y", y)
	}

	pos := vector.MakeVector2(x, y)
	if !game.bounds.Contains(pos) {
		return nil, NewOutOfBoundsError(x, y)
	}

	return game.NewEntityBall(pos, NewRandomAppearance(game.rng))
}

// CreateRandomBalls scatters n balls at random integer positions within bounds.
func (game *BallworldGame) CreateRandomBalls(n int) error {
	for i := 0; i < n; i++ {
		x := float64(game.RandomInt(int(math.Ceil(game.bounds.MinX)), int(math.Floor(game.bounds.MaxX))))
		y := float64(game.RandomInt(int(math.Ceil(game.bounds.MinY)), int(math.Floor(game.bounds.MaxY))))

		if _, err := game.CreateBall(x, y); err != nil {
			return err
		}
	}

	return nil
}

func (game *BallworldGame) GetActionController() *ActionController {
	return game.actions
}

func (game *BallworldGame) GetBounds() commontypes.Bounds {
	return game.bounds
}

func (game *BallworldGame) GetTicknum() int {
	return game.ticknum
}

// RobotDescriptor is the read surface exposed to rendering collaborators.
type RobotDescriptor struct {
	Id        ecs.EntityID
	Position  vector.Vector2
	Velocity  vector.Vector2
	BallCount int
}

// BallDescriptor is the per-ball read surface exposed to rendering collaborators.
type BallDescriptor struct {
	Id       ecs.EntityID
	Position vector.Vector2
	Velocity vector.Vector2
	Color    string
	Carried  bool
}

func (game *BallworldGame) GetRobot() RobotDescriptor {
	qr := game.getEntity(game.robot.GetID(),
		game.positionComponent,
		game.rigidBodyComponent,
		game.carrierComponent,
	)
	utils.Assert(qr != nil, "The robot entity has vanished")

	positionAspect := game.CastPosition(qr.Components[game.positionComponent])
	bodyAspect := game.CastRigidBody(qr.Components[game.rigidBodyComponent])
	carrierAspect := game.CastCarrier(qr.Components[game.carrierComponent])

	return RobotDescriptor{
		Id:        game.robot.GetID(),
		Position:  positionAspect.GetPosition(),
		Velocity:  bodyAspect.GetVelocity(),
		BallCount: carrierAspect.BallCount(),
	}
}

func (game *BallworldGame) GetBalls() []BallDescriptor {
	res := make([]BallDescriptor, 0)

	for _, entityresult := range game.carryableView.Get() {
		positionAspect := game.CastPosition(entityresult.Components[game.positionComponent])
		bodyAspect := game.CastRigidBody(entityresult.Components[game.rigidBodyComponent])
		carryableAspect := game.CastCarryable(entityresult.Components[game.carryableComponent])

		color := ""
		if qr := game.getEntity(entityresult.Entity.GetID(), game.appearanceComponent); qr != nil {
			color = game.CastAppearance(qr.Components[game.appearanceComponent]).Hex()
		}

		res = append(res, BallDescriptor{
			Id:       entityresult.Entity.GetID(),
			Position: positionAspect.GetPosition(),
			Velocity: bodyAspect.GetVelocity(),
			Color:    color,
			Carried:  carryableAspect.IsCarried(),
		})
	}

	return res
}
