// Package rodi provides a client and control loops for the RoDI
// (Robot Didactico Inalambrico) wireless robot.
//
// The robot runs a small web server. Every capability is a GET request whose
// path carries a method code and its arguments; sensor methods answer with JSON.
//
// # Installation
//
//	go install github.com/gwillem/rodi/cmd/rodi@latest
//
// # Usage
//
// Connect to the robot's access point, then check that it answers:
//
//	rodi info
//
// Run one of the control loops until Ctrl+C:
//
//	rodi avoid          # print the distance sensor
//	rodi follow --tui   # line follower with a live chart
//
// Without hardware, start a simulated robot and point the client at it:
//
//	rodi sim --listen :1234 &
//	rodi --host 127.0.0.1 demo
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/rodi: CLI with setup, info, demo, avoid, follow and sim commands
//   - pkg/robot: HTTP client, method codes, readings and configuration
//   - pkg/behavior: distance-avoidance and line-follow loops, demo routine
//   - pkg/sim: simulated robot firmware
package rodi
