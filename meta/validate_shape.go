package meta

// ValidateShape checks a column name and its shape attributes against the
// declared type's capabilities. length and precision use 0 for "absent";
// scale uses nil because an explicit scale of 0 is meaningful.
func ValidateShape(name string, typ SQLType, length, precision int, scale *int) error {
	if err := ValidateIdentifier(name, IdentifierColumn); err != nil {
		return err
	}

	if !IsValidType(typ) {
		return errorf("Column %q has unsupported type %q.", name, string(typ))
	}

	if typ.SupportsLength() {
		if length <= 0 {
			return errorf("Column %q of type %s requires a positive length.", name, typ)
		}
	} else if length != 0 {
		return errorf("Column %q of type %s does not take a length.", name, typ)
	}

	if typ.SupportsPrecisionScale() {
		if precision < 1 {
			return errorf("Column %q of type %s requires a precision of at least 1.", name, typ)
		}
		s := 0
		if scale != nil {
			s = *scale
		}
		if s < 0 || s > precision {
			return errorf("Column %q scale must be between 0 and the precision (%d).", name, precision)
		}
	} else {
		if precision != 0 {
			return errorf("Column %q of type %s does not take a precision.", name, typ)
		}
		if scale != nil {
			return errorf("Column %q of type %s does not take a scale.", name, typ)
		}
	}

	return nil
}
