// Package bounceback makes grabbed objects spring home for [Ebitengine]
// games and XR-style 3D scenes.
//
// When the last selector lets go of an object, a [BounceBack] waits a short
// grace period and then eases the object back to the pose it had when it was
// first grabbed. Grabbing it again, during the wait or mid-flight, stops the
// return on the spot.
//
// # Quick start
//
// Build a scene, give a node a hit radius and attach a BounceBack. The scene
// enables manipulation on the node for you:
//
//	scene := bounceback.NewScene()
//	cube := bounceback.NewNode("cube")
//	cube.HitRadius = 0.75
//	scene.Root().AddChild(cube)
//
//	b, err := scene.AttachBounceBack(cube, bounceback.DefaultConfig())
//
// Call [Scene.Update] from your ebiten.Game Update. Mouse and touch presses
// over the node grab it, moves carry it across the world XY plane, and the
// release starts the bounce.
//
// # Without a scene
//
// Any type implementing [Manipulator] can drive a BounceBack. Use
// [NewBounceBack] and call its Update with the frame delta yourself:
//
//	b := bounceback.NewBounceBack(myManipulator, cfg)
//	// each frame:
//	b.Update(dt)
//
// # Timings
//
// [Config] has two values, BounceBackDelay and BounceBackTime, both in
// seconds and both raised to [MinDuration]. [LoadConfig] reads them from
// YAML.
//
// # State
//
// [BounceBack.State] reports one of [StateIdle], [StateHeld],
// [StatePending] or [StateAnimating]. The return follows a [SmoothStep]
// curve (via [gween]), blending position linearly and rotation spherically,
// and ends exactly on the home pose.
//
// ECS integration is available via the [Donburi] adapter in bounceback/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bounceback
