package easing

import "math"

const backOvershoot = 1.70158

func linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

func sineIn(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func sineOut(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func sineInOut(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

func circIn(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func circOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func circInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

func cubicIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

func cubicOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func cubicInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func quadIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

func quadOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

func quadInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*(t*t) + b
	}
	return -c/2*((t-1)*(t-3)-1) + b
}

func backIn(t, b, c, d float64) float64 {
	s := backOvershoot
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

func backOut(t, b, c, d float64) float64 {
	s := backOvershoot
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

func backInOut(t, b, c, d float64) float64 {
	s := backOvershoot * 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

func bounceOut(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
}

func bounceIn(t, b, c, d float64) float64 {
	return c - bounceOut(d-t, 0, c, d) + b
}

func bounceInOut(t, b, c, d float64) float64 {
	if t < d/2 {
		return bounceIn(t*2, 0, c, d)*0.5 + b
	}
	return bounceOut(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}

func elasticIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t--
	post := c * math.Pow(2, 10*t)
	return -(post * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

func elasticOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

func elasticInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (0.3 * 1.5)
	s := p / 4
	t--
	if t < 0 {
		post := c * math.Pow(2, 10*t)
		return -0.5*(post*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	post := c * math.Pow(2, -10*t)
	return post*math.Sin((t*d-s)*(2*math.Pi)/p)*0.5 + c + b
}
