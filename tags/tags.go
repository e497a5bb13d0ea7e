package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Actor      = donburi.NewTag().SetName("Actor")
	Wall       = donburi.NewTag().SetName("Wall")
	Door       = donburi.NewTag().SetName("Door")
	SecretWall = donburi.NewTag().SetName("SecretWall")
	Prop       = donburi.NewTag().SetName("Prop")
	Pickup     = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for the broadphase space
const (
	ResolvObstacle = "obstacle" // carried by every obstacle object
	ResolvSolid    = "solid"
	ResolvDoor     = "door"
	ResolvSecret   = "secret"
	ResolvProp     = "prop"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvProbe    = "probe"
)
