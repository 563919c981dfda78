// Package icicle implements device-accelerated arithmetic kernels using the
// ICICLE library.
//
// This package depends on the MIT-licensed [ICICLE] library. We currently
// support the scalar-field FFT and the G1 multi-scalar multiplication on
// BN254.
//
// To initialize the ICICLE backend, follow the instructions in the [ICICLE]
// repository. Namely, first you should install the ICICLE library:
//
//	git clone github.com/ingonyama-zk/icicle-gnark
//	cd icicle-gnark/wrappers/golang
//	sudo ./build.sh -curve=bn254
//
// After that, the libraries are installed in `/usr/local/lib` and backend in
// `/usr/local/lib/backend`.
//
// Now set the environment variables:
//
//	export CGO_LDFLAGS="-L/usr/local/lib -licicle_device -lstdc++ -lm -Wl,-rpath=/usr/local/lib"
//	export ICICLE_BACKEND_INSTALL_DIR="/usr/local/lib/backend/"
//
// The device kernels mirror the pure Go entry points and can be substituted
// wherever those are called:
//
//	import "github.com/ocelot-zk/garith/accel/icicle"
//	...
//	res := icicle.MultiExpG1(scalars, points)
//	icicle.FFTFr(coeffs, omega, logN)
//
// Finally, to build the application, use the `icicle` build tag to ensure the
// ICICLE integration is built:
//
//	go build -tags=icicle main.go
//
// Without the build tag the package still compiles, HasIcicle reports false
// and the kernel entry points panic when called. Callers are expected to
// check HasIcicle and fall back to the pure Go kernels.
//
// [ICICLE]: https://github.com/ingonyama-zk/icicle-gnark
package icicle
