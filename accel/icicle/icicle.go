//go:build icicle

package icicle

import (
	"fmt"
	"sync"
	"time"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	icicle_core "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/core"
	icicle_bn254 "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bn254"
	icicle_msm "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bn254/msm"
	icicle_ntt "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/curves/bn254/ntt"
	icicle_runtime "github.com/ingonyama-zk/icicle-gnark/v3/wrappers/golang/runtime"

	"github.com/ocelot-zk/garith/accel"
	"github.com/ocelot-zk/garith/logger"
)

// HasIcicle reports whether the binary was built with ICICLE support.
const HasIcicle = true

var onceWarmUpDevice sync.Once

// warmUpDevice performs one-time initialization of the ICICLE backend and
// warms up all available devices. It is called at the beginning of every
// kernel entry point; it is safe to call multiple times, the initialization
// will only occur once.
func warmUpDevice(config *accel.Config) {
	onceWarmUpDevice.Do(func() {
		log := logger.Logger()
		if config.BackendLibs != "" {
			err := icicle_runtime.LoadBackend(config.BackendLibs, true)
			if err != icicle_runtime.Success {
				panic(fmt.Sprintf("custom ICICLE backend loading error: %s", err.AsString()))
			}
		} else {
			err := icicle_runtime.LoadBackendFromEnvOrDefault()
			if err != icicle_runtime.Success {
				panic(fmt.Sprintf("default ICICLE backend loading error: %s", err.AsString()))
			}
		}
		nbDev, err := icicle_runtime.GetDeviceCount()
		if err != icicle_runtime.Success {
			panic(fmt.Sprintf("ICICLE get device count error: %s", err.AsString()))
		}
		log.Info().Int("nbDev", nbDev).Msg("ICICLE devices detected")
		for id := 0; id < nbDev; id++ {
			device := icicle_runtime.CreateDevice(config.Backend.String(), id)
			log.Debug().Int32("id", device.Id).Str("type", device.GetDeviceType()).Msg("ICICLE device created")
			icicle_runtime.RunOnDevice(&device, func(args ...any) {
				stream, err := icicle_runtime.CreateStream()
				if err != icicle_runtime.Success {
					panic(fmt.Sprintf("ICICLE create stream error: %s", err.AsString()))
				}
				err = icicle_runtime.WarmUpDevice(stream)
				if err != icicle_runtime.Success {
					panic(fmt.Sprintf("ICICLE device warmup error: %s", err.AsString()))
				}
			})
		}
	})
}

var (
	lockDomain  sync.Mutex
	domainOmega fr.Element
	domainLogN  uint
	domainInit  bool
)

// ensureDomain (re)initializes the device twiddle domain for the given root
// of unity. Must run on a goroutine pinned by RunOnDevice.
func ensureDomain(omega fr.Element, logN uint) {
	lockDomain.Lock()
	defer lockDomain.Unlock()
	if domainInit && domainLogN == logN && domainOmega.Equal(&omega) {
		return
	}
	if domainInit {
		if e := icicle_ntt.ReleaseDomain(); e != icicle_runtime.Success {
			panic(fmt.Sprintf("ICICLE release domain error: %s", e.AsString()))
		}
	}
	omegaBits := omega.Bits()
	limbs := icicle_core.ConvertUint64ArrToUint32Arr(omegaBits[:])
	var rou icicle_bn254.ScalarField
	rou.FromLimbs(limbs)
	if e := icicle_ntt.InitDomain(rou, icicle_core.GetDefaultNTTInitDomainConfig()); e != icicle_runtime.Success {
		panic(fmt.Sprintf("ICICLE init domain error: %s", e.AsString()))
	}
	domainOmega = omega
	domainLogN = logN
	domainInit = true
}

// FFTFr computes an in-place radix-2 FFT of a over the roots of omega on the
// device. It has the same contract as the pure Go kernel: a must have length
// exactly 1 << logN and omega must be a primitive 2^logN-th root of unity.
//
// The transform is linear, so Montgomery-form coefficients pass through the
// device untouched in representation and no conversion round trip is needed.
func FFTFr(a []fr.Element, omega fr.Element, logN uint, opts ...accel.Option) {
	if len(a) != 1<<logN {
		panic("icicle: len(a) must be exactly 1 << logN")
	}
	config, err := accel.NewConfig(opts...)
	if err != nil {
		panic(fmt.Sprintf("icicle: %v", err))
	}
	if len(a) == 1 {
		return
	}
	warmUpDevice(config)
	log := logger.Logger()
	start := time.Now()
	device := icicle_runtime.CreateDevice(config.Backend.String(), config.DeviceID)

	chDone := make(chan struct{}, 1)
	icicle_runtime.RunOnDevice(&device, func(args ...any) {
		defer close(chDone)
		ensureDomain(omega, logN)
		var aDevice icicle_core.DeviceSlice
		aHost := (icicle_core.HostSlice[fr.Element])(a)
		aHost.CopyToDevice(&aDevice, true)
		defer aDevice.Free()
		cfg := icicle_ntt.GetDefaultNttConfig()
		cfg.Ordering = icicle_core.KNN
		if e := icicle_ntt.Ntt(aDevice, icicle_core.KForward, &cfg, aDevice); e != icicle_runtime.Success {
			panic(fmt.Sprintf("ICICLE ntt error: %s", e.AsString()))
		}
		aHost.CopyFromDevice(&aDevice)
	})
	<-chDone

	log.Debug().
		Int("n", len(a)).
		Str("backend", config.Backend.String()).
		Dur("took", time.Since(start)).
		Msg("kernel: fft (device)")
}

// MultiExpG1 computes the multi-scalar multiplication of points by scalars on
// the device. It has the same contract as the pure Go kernel: scalars and
// points must have the same length and the zero-length product is the
// identity.
func MultiExpG1(scalars []fr.Element, points []curve.G1Affine, opts ...accel.Option) curve.G1Jac {
	if len(scalars) != len(points) {
		panic("icicle: len(scalars) != len(points)")
	}
	var res curve.G1Jac
	if len(scalars) == 0 {
		return res
	}
	config, err := accel.NewConfig(opts...)
	if err != nil {
		panic(fmt.Sprintf("icicle: %v", err))
	}
	warmUpDevice(config)
	log := logger.Logger()
	start := time.Now()
	device := icicle_runtime.CreateDevice(config.Backend.String(), config.DeviceID)

	// overlap the two host to device transfers
	var scalarsDevice, pointsDevice icicle_core.DeviceSlice
	chScalars := make(chan struct{}, 1)
	chPoints := make(chan struct{}, 1)
	icicle_runtime.RunOnDevice(&device, func(args ...any) {
		scalarsHost := (icicle_core.HostSlice[fr.Element])(scalars)
		scalarsHost.CopyToDevice(&scalarsDevice, true)
		close(chScalars)
	})
	icicle_runtime.RunOnDevice(&device, func(args ...any) {
		pointsHost := (icicle_core.HostSlice[curve.G1Affine])(points)
		pointsHost.CopyToDevice(&pointsDevice, true)
		close(chPoints)
	})
	<-chScalars
	<-chPoints

	chDone := make(chan struct{}, 1)
	icicle_runtime.RunOnDevice(&device, func(args ...any) {
		defer close(chDone)
		defer scalarsDevice.Free()
		defer pointsDevice.Free()
		cfg := icicle_msm.GetDefaultMSMConfig()
		cfg.AreScalarsMontgomeryForm = true
		cfg.AreBasesMontgomeryForm = true
		out := make(icicle_core.HostSlice[icicle_bn254.Projective], 1)
		if e := icicle_msm.Msm(scalarsDevice, pointsDevice, &cfg, out); e != icicle_runtime.Success {
			panic(fmt.Sprintf("ICICLE msm error: %s", e.AsString()))
		}
		res = g1ProjectiveToG1Jac(&out[0])
	})
	<-chDone

	log.Debug().
		Int("n", len(scalars)).
		Str("backend", config.Backend.String()).
		Dur("took", time.Since(start)).
		Msg("kernel: msm (device)")
	return res
}

func projectiveToGnarkAffine(p *icicle_bn254.Projective) curve.G1Affine {
	px, _ := fp.LittleEndian.Element((*[fp.Bytes]byte)(p.X.ToBytesLittleEndian()))
	py, _ := fp.LittleEndian.Element((*[fp.Bytes]byte)(p.Y.ToBytesLittleEndian()))
	pz, _ := fp.LittleEndian.Element((*[fp.Bytes]byte)(p.Z.ToBytesLittleEndian()))

	var zInv, x, y fp.Element
	zInv.Inverse(&pz)
	x.Mul(&px, &zInv)
	y.Mul(&py, &zInv)

	return curve.G1Affine{X: x, Y: y}
}

func g1ProjectiveToG1Jac(p *icicle_bn254.Projective) curve.G1Jac {
	var p1 curve.G1Jac
	affine := projectiveToGnarkAffine(p)
	p1.FromAffine(&affine)
	return p1
}
