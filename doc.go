// Package walknet trains goal-seeking random walks on small directed graphs.
//
// Every node holds a probability distribution over its outgoing edges. A
// trial walks from a start node, sampling the next hop from the current
// node's distribution, until it runs out of budget, hits a dead end or
// steps onto the goal. Walks that touched the goal have each traversed
// edge reinforced; walks that missed have them penalised. Repeated over
// many trials the distributions concentrate on routes that lead to the
// goal.
//
// Packages:
//
//	core/     - Node: edge weights, cumulative choice ranges, sampling and reinforcement
//	network/  - Network: node registry, wiring, trials, training, observers, metrics, stats
//	builder/  - deterministic topology constructors (workshop, ladder, path, cycle, star, ...)
//	config/   - YAML configuration and network construction from it
//	cmd/walknet - command line front end
//
// Quick start:
//
//	net, _ := builder.BuildNetwork(
//		[]network.Option{network.WithGoal(5), network.WithTrials(200)},
//		nil,
//		builder.Workshop(),
//	)
//	rep, _ := net.Train(context.Background())
//	fmt.Println(rep.SuccessRate())
//
// Walks are sequential and a Network is not safe for concurrent use.
package walknet
