package check

import (
	"github.com/anacrolix/argseq"
)

// Resolves the --enable-name/--disable-name pair. Giving both is a conflict.
func Switch(args *argseq.Table, name string, def bool) (bool, error) {
	en, dis := "enable-"+name, "disable-"+name
	hasEn, hasDis := args.Has(en), args.Has(dis)
	switch {
	case hasEn && hasDis:
		return def, argseq.NewConflict(en, dis)
	case hasEn:
		return true, nil
	case hasDis:
		return false, nil
	}
	return def, nil
}
