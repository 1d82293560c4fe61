// Package noise defines the sampling capability consumed by the SCM
// engines — Sampler, a function producing n independent draws from a fixed
// generator — together with a catalog of ready-made factories (normal,
// uniform, Laplace, constant) and the project-wide seed policy.
//
// Design:
//
//   - The capability has one fixed signature: count → vector of draws,
//     with the caller's generator passed explicitly. No global state is
//     consulted anywhere, so determinism composes: a sampling call that
//     derives its generator from a seed is a pure function of that seed.
//   - Factories wrap gonum's distuv distributions over a math/rand/v2
//     source. Parameter domains (variance ≥ 0, a ≤ b, scale > 0) are
//     caller contracts; engines that accept user parameters validate
//     before a Sampler is built.
//   - NewRand implements the seed policy: seed 0 maps to a fixed default
//     so reproducible defaults stay stable; any other seed yields an
//     isolated PCG stream.
package noise
