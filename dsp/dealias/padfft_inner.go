package dealias

// forwardInner implements the p>=3 "four-step" forward kernel: a
// cross-block length-p transform combined with p independent length-m
// transforms via twiddle factors, grounded on the original's
// fftBase::forwardInnerMany.
func (pf *PadFFT[C]) forwardInner(f, fOut []C, r0 int, w []C) error {
	g := pf.g
	if w == nil {
		w = fOut
	}

	pm1 := g.p - 1
	stop := g.L - g.m*pm1
	cm := g.C * g.m
	d0 := pf.d0(r0)

	if r0 == 0 {
		for t := 0; t < pm1; t++ {
			off := cm * t
			copy(w[off:off+cm], f[off:off+cm])
		}

		off := cm * pm1
		stopC := g.C * stop
		copy(w[off:off+stopC], f[off:off+stopC])
		for i := off + stopC; i < off+cm; i++ {
			w[i] = 0
		}

		if err := pf.subP.ForwardBatch(w, w, cm, cm, 1); err != nil {
			return err
		}

		for t := 1; t < g.p; t++ {
			r := g.n * t
			if err := pf.twiddleBlock(w, cm*t, r, false); err != nil {
				return err
			}
		}
	}

	b := cm * g.p
	for d := boolToInt(r0 == 0); d < d0; d++ {
		r := r0 + d
		ff := w[b*d:]

		copy(ff[:cm], f[:cm])

		for t := 1; t < pm1; t++ {
			off := cm * t
			zeta := pf.tw.zqp(r, t)
			applyScalar(ff[off:off+cm], f[off:off+cm], zeta)
		}

		off := cm * pm1
		stopC := g.C * stop
		zeta := pf.tw.zqp(r, pm1)
		applyScalar(ff[off:off+stopC], f[off:off+stopC], zeta)
		for i := off + stopC; i < off+cm; i++ {
			ff[i] = 0
		}

		if err := pf.subP.ForwardBatch(ff, ff, cm, cm, 1); err != nil {
			return err
		}

		for t := 0; t < g.p; t++ {
			rt := g.n*t + r
			if err := pf.twiddleBlock(ff, cm*t, rt, false); err != nil {
				return err
			}
		}
	}

	return pf.finalBlockTransform(w, fOut, d0, false)
}

// backwardInner implements the p>=3 "four-step" backward kernel, grounded
// on fftBase::backwardInnerMany, running the forward stages in reverse.
func (pf *PadFFT[C]) backwardInner(fIn, f []C, r0 int, w []C) error {
	g := pf.g
	if w == nil {
		w = fIn
	}

	if err := pf.finalBlockTransform(fIn, w, pf.d0(r0), true); err != nil {
		return err
	}

	pm1 := g.p - 1
	stop := g.L - g.m*pm1
	cm := g.C * g.m
	d0 := pf.d0(r0)
	first := r0 == 0

	if first {
		for t := 1; t < g.p; t++ {
			r := g.n * t
			if err := pf.twiddleBlock(w, cm*t, r, true); err != nil {
				return err
			}
		}

		if err := pf.subP.InverseBatch(w, w, cm, cm, 1); err != nil {
			return err
		}

		for t := 0; t < pm1; t++ {
			off := cm * t
			copy(f[off:off+cm], w[off:off+cm])
		}

		off := cm * pm1
		stopC := g.C * stop
		copy(f[off:off+stopC], w[off:off+stopC])
	}

	b := cm * g.p
	for d := boolToInt(first); d < d0; d++ {
		r := r0 + d
		ff := w[b*d:]

		for t := 0; t < g.p; t++ {
			rt := g.n*t + r
			if err := pf.twiddleBlock(ff, cm*t, rt, true); err != nil {
				return err
			}
		}

		if err := pf.subP.InverseBatch(ff, ff, cm, cm, 1); err != nil {
			return err
		}

		for c := 0; c < cm; c++ {
			f[c] += ff[c]
		}

		for t := 1; t < pm1; t++ {
			off := cm * t
			zeta := conjC[C](pf.tw.zqp(r, t))
			accumulateScalar(f[off:off+cm], ff[off:off+cm], zeta)
		}

		off := cm * pm1
		stopC := g.C * stop
		zeta := conjC[C](pf.tw.zqp(r, pm1))
		accumulateScalar(f[off:off+stopC], ff[off:off+stopC], zeta)
	}

	return nil
}

// twiddleBlock multiplies (or, if conj, multiplies by the conjugate) the s>=1
// entries of block t of w by zeta_qm[r][s], matching the inline
// "Ft[s] *= Zetar[s]" loops shared by every inner-kernel stage.
func (pf *PadFFT[C]) twiddleBlock(w []C, off, r int, conj bool) error {
	g := pf.g
	for s := 1; s < g.m; s++ {
		base := off + g.C*s
		zeta := pf.tw.zqm(r, s)
		if conj {
			zeta = conjC[C](zeta)
		}
		for c := 0; c < g.C; c++ {
			w[base+c] *= zeta
		}
	}

	return nil
}

// finalBlockTransform runs the p independent length-m subtransforms that
// close out (forward) or open (backward) the four-step decomposition,
// one per block t and channel c.
func (pf *PadFFT[C]) finalBlockTransform(src, dst []C, batches int, inverse bool) error {
	g := pf.g
	cm := g.C * g.m

	for d := 0; d < batches; d++ {
		off := cm * g.p * d
		for t := 0; t < g.p; t++ {
			blk := off + cm*t
			var err error
			if inverse {
				err = pf.subM.InverseBatch(dst[blk:], src[blk:], g.C, g.C, 1)
			} else {
				err = pf.subM.ForwardBatch(dst[blk:], src[blk:], g.C, g.C, 1)
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func applyScalar[C complex64 | complex128](dst, src []C, zeta C) {
	for i := range src {
		dst[i] = zeta * src[i]
	}
}

func accumulateScalar[C complex64 | complex128](dst, src []C, zeta C) {
	for i := range src {
		dst[i] += zeta * src[i]
	}
}
