package math3d

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when inverting a matrix which has no inverse.
var ErrSingular = errors.New("matrix is singular")

// Matrix44 is a 4x4 homogeneous matrix, stored row-major. Points are column
// vectors, so the translation lives in the fourth column.
type Matrix44 [4][4]float64

// Identity is the 4x4 identity matrix.
var Identity = Matrix44{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// MakeMatrix44 builds a matrix from sixteen values in row-major order.
func MakeMatrix44(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float64) Matrix44 {
	return Matrix44{
		{m11, m12, m13, m14},
		{m21, m22, m23, m24},
		{m31, m32, m33, m34},
		{m41, m42, m43, m44},
	}
}

// MakeTransform returns a rigid transform which rotates by the given Euler
// angles and then translates by v.
func MakeTransform(v Vector3, ea EulerAngles) Matrix44 {
	m := ea.Matrix()
	m.SetTranslation(v)
	return m
}

func (m Matrix44) String() string {
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3])
}

// Elements returns the matrix as a 4x4 array of float64s. This is pretty much
// only useful for dumping its contents.
func (m Matrix44) Elements() [4][4]float64 {
	return [4][4]float64(m)
}

// MultiplyMatrices multiplies two 4x4 matrices together (a·b).
func MultiplyMatrices(a Matrix44, b Matrix44) Matrix44 {
	var r Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return r
}

// Chain multiplies any number of matrices together, left to right.
func Chain(ms ...Matrix44) Matrix44 {
	r := Identity
	for _, m := range ms {
		r = MultiplyMatrices(r, m)
	}
	return r
}

// Add returns the element-wise sum of two matrices.
func Add(a Matrix44, b Matrix44) Matrix44 {
	var r Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = a[i][j] + b[i][j]
		}
	}
	return r
}

// MultiplyVector returns m·v.
func (m Matrix44) MultiplyVector(v Vector4) Vector4 {
	var r Vector4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i] += m[i][j] * v[j]
		}
	}
	return r
}

// Transpose returns the transpose of the matrix.
func (m Matrix44) Transpose() Matrix44 {
	var r Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Rotation returns the upper-left 3x3 block.
func (m Matrix44) Rotation() [3][3]float64 {
	return [3][3]float64{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Translation returns the fourth column, minus the homogeneous row.
func (m Matrix44) Translation() Vector3 {
	return Vector3{m[0][3], m[1][3], m[2][3]}
}

// SetTranslation sets the translation of a matrix by overwriting the fourth
// column. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
}

// Determinant3 returns the determinant of the rotation block.
func (m Matrix44) Determinant3() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Finite returns true if no element is NaN or infinite.
func (m Matrix44) Finite() bool {
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Inverse returns the inverse of the matrix. Any invertible matrix is
// accepted, not only rigid transforms. A singular matrix returns an error
// wrapping ErrSingular rather than a matrix full of NaN.
func (m Matrix44) Inverse() (Matrix44, error) {
	if !m.Finite() {
		return Matrix44{}, errors.Wrapf(ErrSingular, "non-finite elements in %s", m)
	}

	a := mat.NewDense(4, 4, m.slice())
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// gonum still fills inv for merely ill-conditioned input, but an
		// infinite condition number means there is nothing to return.
		if c, ok := err.(mat.Condition); ok && !math.IsInf(float64(c), 1) {
			return fromDense(&inv), nil
		}
		return Matrix44{}, errors.Wrapf(ErrSingular, "%s", err)
	}

	return fromDense(&inv), nil
}

// RigidInverse returns the inverse of a rigid transform, [Rᵀ | -Rᵀt]. The
// result is only meaningful if the rotation block is orthonormal.
func (m Matrix44) RigidInverse() Matrix44 {
	var r Matrix44
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}

	t := m.Translation()
	for i := 0; i < 3; i++ {
		r[i][3] = -(r[i][0]*t.X + r[i][1]*t.Y + r[i][2]*t.Z)
	}

	r[3][3] = 1
	return r
}

func (m Matrix44) slice() []float64 {
	s := make([]float64, 0, 16)
	for _, row := range m {
		s = append(s, row[:]...)
	}
	return s
}

func fromDense(d *mat.Dense) Matrix44 {
	var r Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = d.At(i, j)
		}
	}
	return r
}
