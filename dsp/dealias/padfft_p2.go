package dealias

// forward2 implements the p=2 forward kernel, grounded on the original's
// fftPad::forward2Many. Like forward1, it prepares and transforms every
// active residue d in [0,d0) (not just r0) as C independent, C-strided
// length-m subtransforms.
func (pf *PadFFT[C]) forward2(f, fOut []C, r0 int, w []C) error {
	g := pf.g
	if w == nil {
		w = fOut
	}

	lm := g.L - g.m
	d0 := pf.d0(r0)
	cm := g.C * g.m

	for d := 0; d < d0; d++ {
		r := r0 + d
		row := w[cm*d:]

		if r == 0 {
			for s := 0; s < lm; s++ {
				base := g.C * s
				fmBase := cm + base
				for c := 0; c < g.C; c++ {
					row[base+c] = f[base+c] + f[fmBase+c]
				}
			}
			for s := lm; s < g.m; s++ {
				base := g.C * s
				for c := 0; c < g.C; c++ {
					row[base+c] = f[base+c]
				}
			}
		} else {
			zetaqr := pf.tw.zq(r)
			fm := f[cm:]
			for c := 0; c < g.C; c++ {
				row[c] = f[c] + zetaqr*fm[c]
			}
			for s := 1; s < lm; s++ {
				base := g.C * s
				zetars := pf.tw.zqm(r, s)
				for c := 0; c < g.C; c++ {
					row[base+c] = zetars * (f[base+c] + zetaqr*fm[base+c])
				}
			}
			for s := lm; s < g.m; s++ {
				base := g.C * s
				zetars := pf.tw.zqm(r, s)
				for c := 0; c < g.C; c++ {
					row[base+c] = zetars * f[base+c]
				}
			}
		}

		if err := pf.subM.ForwardBatch(fOut[cm*d:], row, g.C, g.C, 1); err != nil {
			return err
		}
	}

	return nil
}

// backward2 implements the p=2 backward kernel, grounded on the
// original's fftBase::backward2Many, including the Zetaqm2 wrap-region
// table for the tail s in [m,L). Like backward1, every active residue's
// subtransform is C independent, C-strided length-m transforms.
func (pf *PadFFT[C]) backward2(fIn, f []C, r0 int, w []C) error {
	g := pf.g
	if w == nil {
		w = fIn
	}

	d0 := pf.d0(r0)
	cm := g.C * g.m

	for d := 0; d < d0; d++ {
		if err := pf.subM.InverseBatch(w[cm*d:], fIn[cm*d:], g.C, g.C, 1); err != nil {
			return err
		}
	}

	first := r0 == 0
	if first {
		for s := 0; s < g.m; s++ {
			base := g.C * s
			for c := 0; c < g.C; c++ {
				f[base+c] = w[base+c]
			}
		}
		for s := g.m; s < g.L; s++ {
			base := g.C * s
			srcBase := g.C * (s - g.m)
			for c := 0; c < g.C; c++ {
				f[base+c] = w[srcBase+c]
			}
		}
	}

	for d := boolToInt(first); d < d0; d++ {
		r := r0 + d
		ff := w[cm*d:]
		for c := 0; c < g.C; c++ {
			f[c] += ff[c]
		}
		for s := 1; s < g.m; s++ {
			base := g.C * s
			zetars := conjC[C](pf.tw.zqm(r, s))
			for c := 0; c < g.C; c++ {
				f[base+c] += zetars * ff[base+c]
			}
		}
		for s := g.m; s < g.L; s++ {
			base := g.C * s
			srcBase := g.C * (s - g.m)
			zetars2 := conjC[C](pf.tw.zqm2(r, s))
			for c := 0; c < g.C; c++ {
				f[base+c] += zetars2 * ff[srcBase+c]
			}
		}
	}

	return nil
}
